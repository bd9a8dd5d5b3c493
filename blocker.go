package saucedemo

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// blocker fails the requests for the resource types that are irrelevant to
// the flows, such as product images and fonts.
type blocker struct {
	r       *rod.HijackRouter
	lg      Logger
	blocked atomic.Int64
}

func newBlocker(ctx context.Context, page *rod.Page, types []proto.NetworkResourceType, lg Logger) (*blocker, error) {
	hPg := page.Context(ctx)
	b := &blocker{
		r:  hPg.HijackRequests(),
		lg: lg,
	}
	for _, rt := range uniqueTypes(types) {
		if err := b.r.Add("*", rt, b.hook); err != nil {
			return nil, fmt.Errorf("error adding hijack route for %s: %w", rt, err)
		}
	}
	go b.r.Run()
	lg.Debug("blocker created", "types", types)
	return b, nil
}

func (b *blocker) hook(h *rod.Hijack) {
	b.blocked.Add(1)
	h.Response.Fail(proto.NetworkErrorReasonBlockedByClient)
}

// Blocked returns the number of requests failed so far.
func (b *blocker) Blocked() int64 {
	return b.blocked.Load()
}

func (b *blocker) Stop() error {
	b.lg.Debug("blocker stopped", "blocked", b.Blocked())
	return b.r.Stop()
}

// uniqueTypes returns the sorted set of non-empty resource types.  An empty
// type would make the route match every request.
func uniqueTypes(types []proto.NetworkResourceType) []proto.NetworkResourceType {
	ret := make([]proto.NetworkResourceType, 0, len(types))
	for _, rt := range types {
		if rt != "" {
			ret = append(ret, rt)
		}
	}
	slices.Sort(ret)
	return slices.Compact(ret)
}
