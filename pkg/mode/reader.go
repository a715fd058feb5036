package mode

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// Header is the leading triple of the input stream: half-window, day count
// and number of sparse assignments.
type Header struct {
	K int `mapstructure:"k"`
	N int `mapstructure:"n"`
	M int `mapstructure:"m"`
}

// Input is a fully parsed and validated dataset.
type Input struct {
	Header Header
	Series *Series
}

// Read parses the whitespace-separated stream "k N M" followed by M pairs
// "day temp". Any malformed token, out-of-range day or truncated stream
// yields an ErrInvalidInput.
func Read(r io.Reader) (*Input, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	// Atoi first so base-prefixed tokens like "0x10" are rejected rather
	// than weakly converted.
	raw := make(map[string]interface{}, 3)
	for _, key := range []string{"k", "n", "m"} {
		v, err := nextInt(sc, key)
		if err != nil {
			return nil, err
		}
		raw[key] = v
	}

	var header Header
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &header,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrInvalidInput, err)
	}

	if header.K < 0 {
		return nil, fmt.Errorf("%w: negative half-window %d", ErrInvalidInput, header.K)
	}
	if header.M < 0 {
		return nil, fmt.Errorf("%w: negative assignment count %d", ErrInvalidInput, header.M)
	}

	series, err := NewSeries(header.N)
	if err != nil {
		return nil, err
	}

	for i := 0; i < header.M; i++ {
		day, err := nextInt(sc, fmt.Sprintf("day of pair %d", i+1))
		if err != nil {
			return nil, err
		}
		temp, err := nextInt(sc, fmt.Sprintf("temp of pair %d", i+1))
		if err != nil {
			return nil, err
		}
		if err := series.Set(day, temp); err != nil {
			return nil, err
		}
	}

	return &Input{Header: header, Series: series}, nil
}

func nextToken(sc *bufio.Scanner, name string) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: missing %s", ErrInvalidInput, name)
	}
	return sc.Text(), nil
}

func nextInt(sc *bufio.Scanner, name string) (int, error) {
	tok, err := nextToken(sc, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrInvalidInput, name, tok)
	}
	return v, nil
}
