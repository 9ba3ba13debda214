// Copyright 2023-2024 daviszhen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xlab/treeprint"
	pqLocal "github.com/xitongsys/parquet-go-source/local"
	pqReader "github.com/xitongsys/parquet-go/reader"
	"go.uber.org/zap"

	"github.com/daviszhen/compute/pkg/column"
	"github.com/daviszhen/compute/pkg/common"
	"github.com/daviszhen/compute/pkg/compute"
	"github.com/daviszhen/compute/pkg/util"
)

var (
	cfgFile string
	conf    = &util.Config{}
)

var defCfgFilePaths = []string{
	"./compute.toml",
	"./etc/compute.toml",
}

var rootCmd = &cobra.Command{
	Use:   "compute",
	Short: "run a filter and projection pipeline over columnar data",
	Run: func(cmd *cobra.Command, args []string) {
		err := func() (err error) {
			defer func() {
				if v := recover(); v != nil {
					err = util.ConvertPanicError(v)
				}
			}()
			return run()
		}()
		if err != nil {
			util.Error("run failed", zap.Error(err))
			os.Exit(1)
		}
	},
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	rootCmd.PersistentFlags().Int("rows", 1024, "synthetic row count")
	rootCmd.PersistentFlags().String("parquet", "", "parquet file to load columns from")
	rootCmd.PersistentFlags().String("logLevel", "", "debug|info|warn|error")
	_ = viper.BindPFlag("rows", rootCmd.PersistentFlags().Lookup("rows"))
	_ = viper.BindPFlag("parquet", rootCmd.PersistentFlags().Lookup("parquet"))
	_ = viper.BindPFlag("logLevel", rootCmd.PersistentFlags().Lookup("logLevel"))
}

func loadConfig() {
	if cfgFile == "" {
		for _, path := range defCfgFilePaths {
			if util.FileIsValid(path) {
				cfgFile = path
				break
			}
		}
	}
	if cfgFile != "" {
		if _, err := toml.DecodeFile(cfgFile, conf); err != nil {
			util.Error("load config file failed",
				zap.String("path", cfgFile),
				zap.Error(err))
			os.Exit(1)
		}
	}
	if conf.Source.Rows == 0 {
		conf.Source.Rows = viper.GetInt("rows")
	}
	if path := viper.GetString("parquet"); path != "" {
		conf.Source.Path = path
		conf.Source.Format = "parquet"
	}
	if level := viper.GetString("logLevel"); level != "" {
		conf.Debug.LogLevel = level
	}
	if conf.Debug.LogLevel != "" {
		util.SetLogLevel(conf.Debug.LogLevel)
	}
	if len(conf.Source.Dict) == 0 {
		conf.Source.Dict = []string{"ibm", "msft", "aapl", "amzn"}
	}
	if conf.Debug.MaxOutputRowCount == 0 {
		conf.Debug.MaxOutputRowCount = 10
	}
}

// dataset is the demo working set: a price column, a quantity column and
// a symbol column sharing one pool.
type dataset struct {
	rows  int
	pool  *column.StringPool
	price *column.Column
	qty   *column.Column
	sym   *column.Column
}

func buildSynthetic() (*dataset, error) {
	rows := conf.Source.Rows
	rnd := rand.New(rand.NewSource(42))
	prices := make([]float64, rows)
	qtys := make([]int64, rows)
	syms := make([]string, rows)
	for i := 0; i < rows; i++ {
		prices[i] = math.Round(rnd.Float64()*10000) / 100
		qtys[i] = int64(rnd.Intn(1000)) + 1
		syms[i] = conf.Source.Dict[rnd.Intn(len(conf.Source.Dict))]
	}
	return assemble(rows, prices, qtys, syms)
}

func assemble(rows int, prices []float64, qtys []int64, syms []string) (*dataset, error) {
	ds := &dataset{
		rows: rows,
		pool: column.NewStringPool(),
	}
	ds.price = column.FromSlice(common.DoubleType(), prices)
	ds.qty = column.FromSlice(common.Int64Type(), qtys)
	symTyp := common.StringType()
	if conf.Source.FixedWidth > 0 {
		symTyp = common.StringFixedType(conf.Source.FixedWidth)
	}
	var err error
	ds.sym, err = column.StringColumnFromValues(ds.pool, symTyp, syms)
	if err != nil {
		return nil, err
	}
	return ds, nil
}

// loadParquet reads three flat columns by index: price, qty, sym.
func loadParquet() (*dataset, error) {
	pqFile, err := pqLocal.NewLocalFileReader(conf.Source.Path)
	if err != nil {
		return nil, err
	}
	defer pqFile.Close()
	rd, err := pqReader.NewParquetColumnReader(pqFile, 1)
	if err != nil {
		return nil, err
	}
	defer rd.ReadStop()
	rows := int(rd.GetNumRows())

	prices := make([]float64, 0, rows)
	qtys := make([]int64, 0, rows)
	syms := make([]string, 0, rows)

	raw, _, _, err := rd.ReadColumnByIndex(0, int64(rows))
	if err != nil {
		return nil, err
	}
	for _, field := range raw {
		switch v := field.(type) {
		case float64:
			prices = append(prices, v)
		case float32:
			prices = append(prices, float64(v))
		default:
			return nil, fmt.Errorf("price column holds %T, want floating", field)
		}
	}

	raw, _, _, err = rd.ReadColumnByIndex(1, int64(rows))
	if err != nil {
		return nil, err
	}
	for _, field := range raw {
		switch v := field.(type) {
		case int32:
			qtys = append(qtys, int64(v))
		case int64:
			qtys = append(qtys, v)
		default:
			return nil, fmt.Errorf("qty column holds %T, want integral", field)
		}
	}

	raw, _, _, err = rd.ReadColumnByIndex(2, int64(rows))
	if err != nil {
		return nil, err
	}
	for _, field := range raw {
		v, ok := field.(string)
		if !ok {
			return nil, fmt.Errorf("sym column holds %T, want string", field)
		}
		syms = append(syms, v)
	}

	return assemble(rows, prices, qtys, syms)
}

func renderPlan(threshold float64, wanted []string) string {
	tree := treeprint.New()
	tree.SetValue("pipeline")
	filter := tree.AddBranch("filter")
	filter.AddNode(fmt.Sprintf("price > %.2f", threshold))
	filter.AddNode(fmt.Sprintf("sym in %v", wanted))
	project := tree.AddBranch("project")
	project.AddNode("notional = price * qty")
	return tree.String()
}

func run() error {
	var ds *dataset
	var err error
	if conf.Source.Format == "parquet" && conf.Source.Path != "" {
		ds, err = loadParquet()
	} else {
		ds, err = buildSynthetic()
	}
	if err != nil {
		return err
	}

	threshold := 50.0
	wanted := conf.Source.Dict[:min(2, len(conf.Source.Dict))]
	if conf.Debug.PrintPlan {
		fmt.Print(renderPlan(threshold, wanted))
	}

	members := make([]*column.Value, 0, len(wanted))
	for _, s := range wanted {
		members = append(members, column.NewStringValue(s))
	}
	symSet, err := column.NewValueSet(common.StringType(), members)
	if err != nil {
		return err
	}

	start := time.Now()
	priceMask, err := compute.DispatchBinary(
		compute.ColumnResult(ds.price),
		compute.ValueResult(column.NewFloatValue(common.DoubleType(), threshold)),
		compute.OP_GT)
	if err != nil {
		return err
	}
	symMask, err := compute.DispatchBinary(
		compute.ColumnResult(ds.sym),
		compute.SetResult(symSet),
		compute.OP_ISIN)
	if err != nil {
		return err
	}
	filter, err := compute.DispatchBinary(priceMask, symMask, compute.OP_AND)
	if err != nil {
		return err
	}
	notional, err := compute.DispatchBinary(
		compute.ColumnResult(ds.price),
		compute.ColumnResult(ds.qty),
		compute.OP_MUL)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	hits := filter.Mask().CountSet()
	util.Info("pipeline done",
		zap.Int("rows", ds.rows),
		zap.Int("hits", hits),
		zap.Float64("selectivity", float64(hits)/float64(max(ds.rows, 1))),
		zap.Duration("elapsed", elapsed))

	if conf.Debug.PrintResult {
		printRows(ds, filter.Mask(), notional.Column())
	}
	return nil
}

func printRows(ds *dataset, mask *column.Mask, notional *column.Column) {
	prices := column.TypedSlice[float64](ds.price)
	qtys := column.TypedSlice[int64](ds.qty)
	offs := column.TypedSlice[uint64](ds.sym)
	nots := column.TypedSlice[float64](notional)
	printed := 0
	for row := 0; row < ds.rows && printed < conf.Debug.MaxOutputRowCount; row++ {
		if !mask.Test(row) {
			continue
		}
		fmt.Printf("%-8s %10.2f %6d %14.2f\n",
			ds.pool.LogicalAt(offs[row], ds.sym.Typ()),
			prices[row], qtys[row], nots[row])
		printed++
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
