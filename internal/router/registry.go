package router

import "github.com/gin-gonic/gin"

// Module is a feature slice (accounts, listings, uploads) that mounts its
// own routes on the shared group.
type Module interface {
	Register(rg *gin.RouterGroup)
}

// Registry collects feature modules and mounts them under /api in a
// single pass at startup.
type Registry struct {
	api     *gin.RouterGroup
	modules []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{api: engine.Group("/api")}
}

func (r *Registry) Add(mods ...Module) {
	r.modules = append(r.modules, mods...)
}

// RegisterAll mounts every added module. Call once, after the last Add.
func (r *Registry) RegisterAll() {
	for _, m := range r.modules {
		m.Register(r.api)
	}
}
