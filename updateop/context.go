package updateop

import (
	"time"

	"github.com/mondoc/go-mondoc/matchop"
)

// Context carries the ambient dependencies of modifier application: the
// predicate matcher used by $pull conditions and the clock used by
// $currentDate.
type Context struct {
	Match matchop.MatchFunc
	Now   func() time.Time
}

func NewContext(mf matchop.MatchFunc) *Context {
	return &Context{
		Match: mf,
		Now:   time.Now,
	}
}
