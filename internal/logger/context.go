package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

type ctxKeyDetails struct{}

type ctxValue struct {
	Super   *ctxValue
	Details []Detail
}

func ContextWith(ctx context.Context, ds ...Detail) context.Context {
	if len(ds) == 0 {
		return ctx
	}
	var v ctxValue
	if prev, ok := lookupValue(ctx); ok {
		v.Super = prev
	}
	v.Details = ds
	return context.WithValue(ctx, ctxKeyDetails{}, &v)
}

// getDetailsFromContext returns the details attached to the context,
// the most recently attached detail wins on key collision.
func getDetailsFromContext(ctx context.Context) logrus.Fields {
	fs := logrus.Fields{}
	if ctx == nil {
		return fs
	}
	var chain []*ctxValue
	for v, ok := lookupValue(ctx); ok && v != nil; v = v.Super {
		chain = append(chain, v)
	}
	for i := len(chain) - 1; 0 <= i; i-- {
		for _, d := range chain[i].Details {
			d.addTo(fs)
		}
	}
	return fs
}

func lookupValue(ctx context.Context) (*ctxValue, bool) {
	if ptr, ok := ctx.Value(ctxKeyDetails{}).(*ctxValue); ok {
		return ptr, true
	}
	return nil, false
}
