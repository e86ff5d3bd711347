package tracing

import (
	"fmt"
	"reflect"

	"github.com/sarchlab/nocif/noc/messaging"
	"github.com/sarchlab/nocif/sim/hooking"
	"github.com/sarchlab/nocif/sim/naming"
)

// NamedHookable represent something both have a name and can be hooked
type NamedHookable interface {
	naming.Named
	hooking.Hookable
}

// CollectTrace let the tracer to collect trace from a domain
func CollectTrace(domain NamedHookable, tracer Tracer) {
	for _, hook := range domain.Hooks() {
		hook, ok := hook.(*traceHook)
		if ok && hook.t == tracer {
			panic(fmt.Sprintf(
				"domain %s already has tracer %s",
				domain.Name(), reflect.TypeOf(tracer)))
		}
	}

	h := traceHook{t: tracer, where: domain.Name()}
	domain.AcceptHook(&h)
}

// A traceHook turns hook invocations into trace records.
type traceHook struct {
	t     Tracer
	where string
}

// Func converts the hook context into a record. Locations that are not given
// are reported as -1.
func (h *traceHook) Func(ctx hooking.HookCtx) {
	rec := Record{
		Cycle:  ctx.Cycle,
		Where:  h.where,
		What:   ctx.Pos.Name,
		Subnet: -1,
		Node:   -1,
		VC:     -1,
	}

	if loc, ok := ctx.Detail.(messaging.Location); ok {
		rec.Subnet = loc.Subnet
		rec.Node = loc.Node
		rec.VC = loc.VC
	}

	if item, ok := ctx.Item.(Traceable); ok {
		rec.ID = item.TraceID()
	}

	h.t.Trace(rec)
}
