package encode

import "github.com/mondoc/go-mondoc/doc"

type opts struct {
	colors *Colors
}

type EncodeOption func(*opts)

func EncodeColors(c *Colors) EncodeOption {
	return func(o *opts) { o.colors = c }
}

func (o *opts) field(name string) string {
	if o.colors == nil || o.colors.Field == nil {
		return name
	}
	return o.colors.Field("%s", name)
}

func (o *opts) scalar(t doc.Type, s string) string {
	if o.colors == nil {
		return s
	}
	f := o.colors.Map[t]
	if f == nil {
		return s
	}
	return f("%s", s)
}
