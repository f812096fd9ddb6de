// Package inspect serves read-only JSON views of a container's bindings.
//
//	GET /bindings          → {"data": [BindingInfo, ...]}
//	GET /bindings/{name}   → {"data": BindingInfo} or 404
package inspect

import (
	"fmt"
	"net/http"

	"github.com/km-arc/go-inject/framework/container"
	gohttp "github.com/km-arc/go-inject/framework/http"
	"github.com/km-arc/go-inject/framework/routing"
)

// Register mounts the inspection routes on r.
func Register(r *routing.Router, c *container.Container) {
	h := &handler{container: c}
	r.Get("/bindings", h.index)
	r.Get("/bindings/{name}", h.show)
}

type handler struct {
	container *container.Container
}

func (h *handler) index(w http.ResponseWriter, _ *http.Request) {
	gohttp.NewResponse(w).Success(h.container.Describe())
}

func (h *handler) show(w http.ResponseWriter, r *http.Request) {
	res := gohttp.NewResponse(w)
	name := routing.Param(r, "name")
	info, ok := h.container.DescribeBinding(name)
	if !ok {
		res.NotFound(fmt.Sprintf("no binding registered for [%s]", name))
		return
	}
	res.Success(info)
}
