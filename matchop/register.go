package matchop

import (
	"errors"
	"fmt"
	"sync"
)

var (
	mu sync.RWMutex
	d  = map[string]Symbol{}
)

var ErrSymbolExists = errors.New("symbol exists")

func Register(s Symbol) error {
	key := s.String()
	mu.Lock()
	defer mu.Unlock()
	_, present := d[key]
	if present {
		return fmt.Errorf("%s: %w", s, ErrSymbolExists)
	}
	d[key] = s
	return nil
}

func init() {
	Register(Eq())
	Register(Ne())
	Register(Gt())
	Register(Gte())
	Register(Lt())
	Register(Lte())
	Register(In())
	Register(Nin())
	Register(Exists())
	Register(Size())
	Register(Mod())
	Register(Not())
	Register(Regex())
	Register(TypeOf())
	Register(ElemMatch())
	Register(AllOf())
	Register(Where())
}

func Lookup(s string) Symbol {
	mu.RLock()
	defer mu.RUnlock()
	return d[s]
}

func Symbols() []Symbol {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]Symbol, 0, len(d))
	for _, s := range d {
		res = append(res, s)
	}
	return res
}
