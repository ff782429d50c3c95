package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
)

type currency struct {
	Name  string
	Code  string
	Num   string
	Scale string
}

// factorClasses groups currencies by the number of digits in their minor unit.
// A currency without a scale (XXX) belongs to no class.
type factorClasses struct {
	Currencies   []currency
	ZeroDecimal  []currency
	TwoDecimal   []currency
	ThreeDecimal []currency
}

func main() {
	data, err := readCsvFile(filepath.Join("scripts", "currency", "currency_data.csv"))
	if err != nil {
		panic(fmt.Errorf("reading CSV file: %w", err))
	}

	currs := convertDataToCurrencies(data)

	classes, err := classifyCurrencies(currs)
	if err != nil {
		panic(fmt.Errorf("classifying currencies: %w", err))
	}

	code, err := generateGoCode(filepath.Join("scripts", "currency", "currency_data.tmpl"), classes)
	if err != nil {
		panic(fmt.Errorf("generating Go code: %w", err))
	}

	err = writeToFile("currency_data.go", code)
	if err != nil {
		panic(fmt.Errorf("writing to file: %w", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	return reader.ReadAll()
}

func convertDataToCurrencies(data [][]string) []currency {
	// XXX always goes first, so that it becomes the zero value
	less := func(i, j int) bool {
		a, b := data[i][1], data[j][1]
		switch {
		case a == "XXX":
			return true
		case b == "XXX":
			return false
		}
		return a < b
	}
	sort.Slice(data, less)

	currs := make([]currency, 0, len(data))
	for _, rec := range data {
		currs = append(currs, currency{
			Name:  rec[0],
			Code:  rec[1],
			Num:   rec[2],
			Scale: rec[3],
		})
	}
	return currs
}

func classifyCurrencies(currs []currency) (factorClasses, error) {
	classes := factorClasses{Currencies: currs}
	seen := make(map[string]bool, len(currs))
	for _, c := range currs {
		if seen[c.Code] {
			return factorClasses{}, fmt.Errorf("duplicate currency %v", c.Code)
		}
		seen[c.Code] = true
		switch c.Scale {
		case "":
		case "0":
			classes.ZeroDecimal = append(classes.ZeroDecimal, c)
		case "2":
			classes.TwoDecimal = append(classes.TwoDecimal, c)
		case "3":
			classes.ThreeDecimal = append(classes.ThreeDecimal, c)
		default:
			return factorClasses{}, fmt.Errorf("currency %v: unsupported scale %q", c.Code, c.Scale)
		}
	}
	return classes, nil
}

func generateGoCode(filename string, classes factorClasses) ([]byte, error) {
	fmap := template.FuncMap{
		"lower": strings.ToLower,
	}
	tmpl, err := template.New(filepath.Base(filename)).Funcs(fmap).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	err = tmpl.Execute(&output, classes)
	if err != nil {
		return nil, err
	}

	return format.Source(output.Bytes())
}

func writeToFile(filename string, content []byte) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	return writer.Flush()
}
