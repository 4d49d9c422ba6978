// Package mcp provides the MCP (Model Context Protocol) server implementation.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/xvierd/stayfocused/internal/adapters/export"
	"github.com/xvierd/stayfocused/internal/domain"
	"github.com/xvierd/stayfocused/internal/ports"
)

// Server implements the MCP server using mark3labs/mcp-go.
type Server struct {
	server        *server.MCPServer
	stateProvider ports.MCPStateProvider
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewServer creates a new MCP server instance.
func NewServer(stateProvider ports.MCPStateProvider, version string) *Server {
	s := &Server{
		stateProvider: stateProvider,
	}

	s.server = server.NewMCPServer(
		"stayfocused",
		version,
		server.WithLogging(),
	)

	s.registerTools()

	return s
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	s.server.AddTool(
		mcp.NewTool(
			"get_state",
			mcp.WithDescription("Get the full focus state: projects, tasks, elapsed times and what is being tracked"),
		),
		s.handleGetState,
	)

	s.server.AddTool(
		mcp.NewTool(
			"list_projects",
			mcp.WithDescription("List projects with total tracked time and today's commitment"),
		),
		s.handleListProjects,
	)

	s.server.AddTool(
		mcp.NewTool(
			"list_tasks",
			mcp.WithDescription("List the tasks of a project"),
			mcp.WithNumber(
				"project",
				mcp.Description("Project index (default: the current project)"),
			),
		),
		s.handleListTasks,
	)

	s.server.AddTool(
		mcp.NewTool(
			"start_task",
			mcp.WithDescription("Start tracking time on the current task"),
		),
		s.commandHandler(ports.CmdTaskStart),
	)

	s.server.AddTool(
		mcp.NewTool(
			"stop_task",
			mcp.WithDescription("Stop tracking time on the current task"),
		),
		s.commandHandler(ports.CmdTaskStop),
	)

	s.server.AddTool(
		mcp.NewTool(
			"choose_random_task",
			mcp.WithDescription("Make a random task other than the current one current"),
		),
		s.commandHandler(ports.CmdTaskRandom),
	)

	s.server.AddTool(
		mcp.NewTool(
			"choose_random_project",
			mcp.WithDescription("Make a random project other than the current one current"),
		),
		s.commandHandler(ports.CmdProjectRandom),
	)

	addTaskTool := mcp.NewTool(
		"add_task",
		mcp.WithDescription("Add a task to the current project"),
		mcp.WithString(
			"name",
			mcp.Required(),
			mcp.Description("The name of the task"),
		),
		mcp.WithString(
			"description",
			mcp.Description("Optional description of the task"),
		),
	)
	s.server.AddTool(addTaskTool, s.handleAddTask)

	selectTaskTool := mcp.NewTool(
		"select_task",
		mcp.WithDescription("Make the task at index current in the current project"),
		mcp.WithNumber(
			"index",
			mcp.Required(),
			mcp.Description("Zero-based task index"),
		),
	)
	s.server.AddTool(selectTaskTool, s.indexHandler(ports.CmdTaskSelect))

	selectProjectTool := mcp.NewTool(
		"select_project",
		mcp.WithDescription("Make the project at index current"),
		mcp.WithNumber(
			"index",
			mcp.Required(),
			mcp.Description("Zero-based project index"),
		),
	)
	s.server.AddTool(selectProjectTool, s.indexHandler(ports.CmdProjectSelect))
}

// Start begins serving MCP requests via stdio.
func (s *Server) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)

	return server.ServeStdio(s.server)
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// IsRunning returns true if the server is active.
func (s *Server) IsRunning() bool {
	if s.ctx == nil {
		return false
	}
	return s.ctx.Err() == nil
}

// Ensure Server implements ports.MCPHandler.
var _ ports.MCPHandler = (*Server)(nil)

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func activeSummary(state *domain.CurrentState) map[string]interface{} {
	result := map[string]interface{}{
		"view":           string(state.View),
		"tracking":       state.IsTracking(),
		"active_project": nil,
		"active_task":    nil,
	}
	if p := state.ActiveProject(); p != nil {
		result["active_project"] = map[string]interface{}{
			"index":            p.Index,
			"name":             p.Name,
			"total":            domain.FormatHMS(p.TotalTime),
			"commitment_today": p.CommitmentToday.String(),
			"commitment_met":   p.CommitmentMet(),
		}
	}
	if t := state.ActiveTask(); t != nil {
		result["active_task"] = map[string]interface{}{
			"index":    t.Index,
			"name":     t.Name,
			"elapsed":  t.ElapsedHMS,
			"tracking": t.Tracking,
		}
	}
	return result
}

// handleGetState handles the get_state tool.
func (s *Server) handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := s.stateProvider.GetCurrentState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current state: %w", err)
	}

	result := activeSummary(state)
	result["projects"] = export.NewDocument(state).Projects
	return jsonResult(result)
}

// handleListProjects handles the list_projects tool.
func (s *Server) handleListProjects(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := s.stateProvider.GetCurrentState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current state: %w", err)
	}

	projects := []map[string]interface{}{}
	for _, p := range state.Projects {
		projects = append(projects, map[string]interface{}{
			"index":            p.Index,
			"name":             p.Name,
			"current":          p.Current,
			"task_count":       len(p.Tasks),
			"total":            domain.FormatHMS(p.TotalTime),
			"commitment_today": p.CommitmentToday.String(),
		})
	}

	return jsonResult(map[string]interface{}{
		"projects":    projects,
		"total_count": len(projects),
	})
}

// handleListTasks handles the list_tasks tool.
func (s *Server) handleListTasks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := s.stateProvider.GetCurrentState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current state: %w", err)
	}

	idx := int(request.GetFloat("project", float64(state.CurrentProject)))
	if idx < 0 || idx >= len(state.Projects) {
		return mcp.NewToolResultError(fmt.Sprintf("no project at index %d", idx)), nil
	}
	p := state.Projects[idx]

	tasks := []map[string]interface{}{}
	for _, t := range p.Tasks {
		tasks = append(tasks, map[string]interface{}{
			"index":       t.Index,
			"name":        t.Name,
			"description": t.Description,
			"note":        t.Note,
			"current":     t.Current,
			"tracking":    t.Tracking,
			"elapsed":     t.ElapsedHMS,
		})
	}

	return jsonResult(map[string]interface{}{
		"project":     p.Name,
		"tasks":       tasks,
		"total_count": len(tasks),
	})
}

// commandHandler returns a handler that runs a no-argument command and
// reports the resulting active state.
func (s *Server) commandHandler(kind ports.CommandKind) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return s.execute(ctx, ports.Command{Kind: kind})
	}
}

// indexHandler returns a handler for a command addressed by the "index" argument.
func (s *Server) indexHandler(kind ports.CommandKind) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		idx := request.GetFloat("index", -1)
		if idx < 0 {
			return mcp.NewToolResultError("index is required and must be non-negative"), nil
		}
		return s.execute(ctx, ports.Command{Kind: kind, Index: int(idx)})
	}
}

func (s *Server) execute(ctx context.Context, cmd ports.Command) (*mcp.CallToolResult, error) {
	if err := s.stateProvider.Execute(ctx, cmd); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", cmd.Kind, err)), nil
	}

	state, err := s.stateProvider.GetCurrentState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current state: %w", err)
	}
	return jsonResult(activeSummary(state))
}

// handleAddTask handles the add_task tool.
func (s *Server) handleAddTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name is required"), nil
	}
	description := request.GetString("description", "")

	idx, err := s.stateProvider.AddNamedTask(ctx, name, description)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to add task: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"index":       idx,
		"name":        name,
		"description": description,
	})
}
