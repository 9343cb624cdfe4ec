package main

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	"poolscout/config"
	"poolscout/internal/errors"
	"poolscout/internal/transform/address"
	"poolscout/internal/transform/poolinfer"
)

type classifyLine struct {
	Description string  `json:"description"`
	PoolFlag    bool    `json:"poolFlag"`
	PoolType    string  `json:"poolType"`
	Category    string  `json:"category"`
	Confidence  float64 `json:"confidence"`
	Evidence    string  `json:"evidence"`
}

type parseLine struct {
	Input         string            `json:"input"`
	AddressNumber string            `json:"addressNumber"`
	StreetAddress string            `json:"streetAddress"`
	City          string            `json:"city"`
	ProvinceState string            `json:"provinceState"`
	PostalCode    string            `json:"postalCode"`
	Problems      []address.Problem `json:"problems,omitempty"`
}

// runClassify prints one JSON line per description. The window falls back
// to the configured one, or the classifier default when no config loads.
func runClassify(in io.Reader, out io.Writer, window int, args []string) error {
	if window <= 0 {
		if cfg, err := config.New(); err == nil && cfg.Pool != nil {
			window = cfg.Pool.WindowWords
		}
	}
	classifier := poolinfer.New(window)

	enc := json.NewEncoder(out)

	return eachInput(in, args, func(description string) error {
		a := classifier.Analyze(description)

		return enc.Encode(classifyLine{
			Description: description,
			PoolFlag:    a.Verdict.Flag,
			PoolType:    string(a.Verdict.Type),
			Category:    string(a.Category),
			Confidence:  a.Confidence,
			Evidence:    a.Evidence,
		})
	})
}

// runParse prints one JSON line per raw address.
func runParse(in io.Reader, out io.Writer, args []string) error {
	enc := json.NewEncoder(out)

	return eachInput(in, args, func(raw string) error {
		parsed := address.Parse(raw)

		return enc.Encode(parseLine{
			Input:         raw,
			AddressNumber: parsed.AddressNumber,
			StreetAddress: parsed.StreetAddress,
			City:          parsed.City,
			ProvinceState: parsed.ProvinceState,
			PostalCode:    parsed.PostalCode,
			Problems:      address.Check(parsed),
		})
	})
}

// eachInput calls fn for every argument, or for every non-blank stdin line
// when there are none.
func eachInput(in io.Reader, args []string, fn func(string) error) error {
	if len(args) > 0 {
		for _, arg := range args {
			if err := fn(arg); err != nil {
				return errors.WithStack(err)
			}
		}

		return nil
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return errors.WithStack(err)
		}
	}

	return errors.Wrap(scanner.Err(), "failed to read input")
}
