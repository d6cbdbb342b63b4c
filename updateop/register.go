package updateop

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
	Register(Set())
	Register(Unset())
	Register(Inc())
	Register(Mul())
	Register(Min())
	Register(Max())
	Register(Rename())
	Register(Push())
	Register(AddToSet())
	Register(Pop())
	Register(Pull())
	Register(PullAll())
	Register(CurrentDate())
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
