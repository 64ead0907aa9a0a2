// Package mcp exposes the training data over the Model Context Protocol so
// assistants can query history, stats and 1RM trends, and log sets on the
// user's behalf.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Mriskiali/motion-fits/internal/store"
)

// New creates an MCP server with all tools and resources registered.
func New(st *store.Store, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("MotionFits", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("MotionFits personal training server. Query workout history, training stats, personal bests and estimated-1RM trends, or log a completed set."),
	)

	h := &handlers{store: st, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolGetSessions, Handler: h.getSessions},
		server.ServerTool{Tool: toolGetTrainingStats, Handler: h.getTrainingStats},
		server.ServerTool{Tool: toolGetPersonalBests, Handler: h.getPersonalBests},
		server.ServerTool{Tool: toolGetOneRMHistory, Handler: h.getOneRMHistory},
		server.ServerTool{Tool: toolLogSet, Handler: h.logSet},
	)

	s.AddResources(
		server.ServerResource{Resource: resRecentSessions, Handler: h.recentSessions},
		server.ServerResource{Resource: resPlanCatalog, Handler: h.planCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	store *store.Store
	log   *slog.Logger
}

// --- Resource definitions ---

var resRecentSessions = mcp.NewResource(
	"motionfits://recent_sessions",
	"Recent Sessions",
	mcp.WithResourceDescription("Workout sessions from the last 14 days"),
	mcp.WithMIMEType("application/json"),
)

var resPlanCatalog = mcp.NewResource(
	"motionfits://plan_catalog",
	"Plan Catalog",
	mcp.WithResourceDescription("All workout plans, built-in and custom, with their exercise lists"),
	mcp.WithMIMEType("application/json"),
)
