// Package ingest reads share datasets from their JSON form.
//
// A dataset is a single JSON object. The "keys" member declares the number
// of points n and the threshold k, and every member whose name is a positive
// integer x holds a point, with its value written as digits in some base:
//
//	{
//	    "keys": {"n": 4, "k": 3},
//	    "1": {"base": "10", "value": "4"},
//	    "2": {"base": "2", "value": "1000"},
//	    "3": {"base": 10, "value": "14"},
//	    "6": {"base": "4", "value": "230"}
//	}
//
// Members with any other name are ignored. When several members decode to
// the same x, for example "5" and "05", the last one wins.
package ingest

import (
	"encoding/json"
	"io"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/renproject/sharecheck"
	"github.com/renproject/sharecheck/radix"
)

// ErrInvalidIndex is returned for a point whose x is zero.
var ErrInvalidIndex = errors.New("x must be a positive integer")

// Dataset is a decoded set of points together with the counts declared in
// its "keys" member. The declared values are zero when they are absent.
type Dataset struct {
	N, K   int
	Shares sharecheck.Shares
}

type keys struct {
	N int `json:"n"`
	K int `json:"k"`
}

type point struct {
	Base  base   `json:"base"`
	Value string `json:"value"`
}

// base accepts both "16" and 16.
type base int

func (b *base) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.Errorf("invalid base %s", data)
	}
	*b = base(n)
	return nil
}

// ReadFile reads a dataset from the named file.
func ReadFile(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, errors.Wrap(err, "opening dataset")
	}
	defer f.Close()

	ds, err := Read(f)
	if err != nil {
		return Dataset{}, errors.Wrapf(err, "reading %v", path)
	}
	return ds, nil
}

// Read decodes a dataset. Members are consumed in document order, so that
// duplicate points resolve the same way regardless of how they are spelled.
func Read(r io.Reader) (Dataset, error) {
	dec := json.NewDecoder(r)
	if err := expectDelim(dec, '{'); err != nil {
		return Dataset{}, err
	}

	var ds Dataset
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Dataset{}, errors.Wrap(err, "reading member name")
		}
		name, ok := tok.(string)
		if !ok {
			return Dataset{}, errors.Errorf("unexpected token %v", tok)
		}

		if name == "keys" {
			var k keys
			if err := dec.Decode(&k); err != nil {
				return Dataset{}, errors.Wrap(err, "decoding keys")
			}
			ds.N, ds.K = k.N, k.K
			continue
		}

		x, err := strconv.ParseUint(name, 10, 64)
		if err != nil {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return Dataset{}, errors.Wrapf(err, "skipping member %q", name)
			}
			continue
		}
		if x == 0 {
			return Dataset{}, errors.Wrapf(ErrInvalidIndex, "point %q", name)
		}

		var p point
		if err := dec.Decode(&p); err != nil {
			return Dataset{}, errors.Wrapf(err, "point %q", name)
		}
		y, err := p.decode()
		if err != nil {
			return Dataset{}, errors.Wrapf(err, "point %q", name)
		}
		ds.Shares.Set(sharecheck.Share{Index: x, Value: y})
	}

	if err := expectDelim(dec, '}'); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

func (p point) decode() (*big.Int, error) {
	return radix.Decode(p.Value, int(p.Base))
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(err, "reading dataset")
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return errors.Errorf("expected %v, found %v", want, tok)
	}
	return nil
}
