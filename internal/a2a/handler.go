package a2a

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/BerylCAtieno/goflux-content-engine/internal/catalog"
	"github.com/BerylCAtieno/goflux-content-engine/internal/engine"
	"github.com/BerylCAtieno/goflux-content-engine/internal/selection"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CardPath    = "/.well-known/agent.json"
	ContentPath = "/a2a/content"
)

type A2AHandler struct {
	engine  *engine.Engine
	logger  *slog.Logger
	version string
}

func NewA2AHandler(e *engine.Engine, logger *slog.Logger, version string) *A2AHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &A2AHandler{engine: e, logger: logger, version: version}
}

func (h *A2AHandler) Register(r gin.IRouter) {
	r.GET(CardPath, h.ServeAgentCard)
	r.POST(ContentPath, RequestLoggingMiddleware(h.logger), h.HandleContent)
}

// RequestLoggingMiddleware logs A2A request bodies and response status at
// debug level.
func RequestLoggingMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		bodyBytes, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))

		logger.Debug("A2A request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("body", string(bodyBytes)))

		c.Next()

		logger.Debug("A2A response",
			slog.Int("status", c.Writer.Status()),
			slog.Duration("elapsed", time.Since(start)))
	}
}

// contentRequest is the optional data part of a message/send call.
type contentRequest struct {
	Theme     string                              `json:"theme"`
	Subthemes string                              `json:"subthemes"`
	Products  selection.Filter[catalog.ProductID] `json:"products"`
	Channels  selection.Filter[catalog.ChannelID] `json:"channels"`
	Persona   string                              `json:"persona"`
	Revision  string                              `json:"revision"`
}

// HandleContent processes A2A messages
func (h *A2AHandler) HandleContent(c *gin.Context) {
	bodyBytes, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.sendErrorResponse(c, nil, "Failed to read request body", CodeParseError)
		return
	}

	var rpcReq JSONRPCRequest
	if err := json.Unmarshal(bodyBytes, &rpcReq); err != nil || rpcReq.Method == "" {
		// Some clients post the message params without the JSON-RPC envelope.
		h.handleDirectMessage(c, bodyBytes)
		return
	}

	if rpcReq.JSONRPC != "2.0" {
		h.logger.Warn("Invalid JSON-RPC version", slog.String("version", rpcReq.JSONRPC))
		h.sendErrorResponse(c, rpcReq.ID, "Invalid JSON-RPC version", CodeInvalidRequest)
		return
	}

	switch rpcReq.Method {
	case "message/send", "agent/task":
		var params MessageParams
		if err := json.Unmarshal(rpcReq.Params, &params); err != nil {
			h.logger.Warn("Invalid message params", slog.String("error", err.Error()))
			h.sendErrorResponse(c, rpcReq.ID, "Invalid parameters", CodeInvalidParams)
			return
		}
		h.sendSuccessResponse(c, rpcReq.ID, h.handleMessage(c, params.Message))
	default:
		h.sendErrorResponse(c, rpcReq.ID, fmt.Sprintf("Method not found: %s", rpcReq.Method), CodeMethodNotFound)
	}
}

func (h *A2AHandler) handleDirectMessage(c *gin.Context, bodyBytes []byte) {
	var params MessageParams
	if err := json.Unmarshal(bodyBytes, &params); err != nil || len(params.Message.Parts) == 0 {
		h.sendErrorResponse(c, nil, "Invalid request format", CodeParseError)
		return
	}
	h.sendSuccessResponse(c, "direct-message", h.handleMessage(c, params.Message))
}

func (h *A2AHandler) handleMessage(c *gin.Context, msg A2AMessage) TaskResult {
	taskID := msg.TaskID
	if taskID == "" {
		taskID = uuid.New().String()
	}

	req, err := extractRequest(msg)
	if err != nil {
		return h.createErrorTaskResult(taskID, msg.ContextID, StateInputRequired, engine.DisplayMessage(err))
	}

	state := selection.NewState()
	state.SetTheme(req.Theme)
	state.SetSubthemes(req.Subthemes)
	state.SetProducts(req.Products)
	state.SetChannels(req.Channels)
	if err := state.SetPersona(selection.PersonaFilter(req.Persona)); err != nil {
		return h.createErrorTaskResult(taskID, msg.ContextID, StateInputRequired, engine.DisplayMessage(err))
	}

	h.logger.Info("A2A content request", slog.String("task_id", taskID), slog.String("theme", state.Theme))

	result, err := h.engine.Generate(c.Request.Context(), state, req.Revision)
	if err != nil {
		taskState := StateFailed
		if selection.IsValidationError(err) {
			taskState = StateInputRequired
		}
		return h.createErrorTaskResult(taskID, msg.ContextID, taskState, engine.DisplayMessage(err))
	}

	text := FormatResult(state.Theme, result)
	data, err := DataPart(result)
	if err != nil {
		return h.createErrorTaskResult(taskID, msg.ContextID, StateFailed, "Failed to encode result")
	}

	return TaskResult{
		ID:        taskID,
		ContextID: msg.ContextID,
		Kind:      "task",
		Status: TaskStatus{
			State:     StateCompleted,
			Timestamp: Timestamp(),
			Message: &A2AMessage{
				Kind:      "message",
				Role:      RoleAgent,
				MessageID: uuid.New().String(),
				TaskID:    taskID,
				Parts:     []MessagePart{TextPart(text)},
			},
		},
		Artifacts: []Artifact{
			{ArtifactID: uuid.New().String(), Name: "Marketing Content", Parts: []MessagePart{TextPart(text)}},
			{ArtifactID: uuid.New().String(), Name: "Marketing Content Data", Parts: []MessagePart{data}},
		},
	}
}

// extractRequest reads the theme from text parts and the options from a
// data part. A data part holding conversation history (an array of parts)
// supplies the theme from its latest text when the message has none.
func extractRequest(msg A2AMessage) (contentRequest, error) {
	var req contentRequest
	var texts []string
	var history []string

	for _, part := range msg.Parts {
		switch part.Kind {
		case PartText:
			if t := cleanText(part.Text); t != "" {
				texts = append(texts, t)
			}
		case PartData:
			data := bytes.TrimSpace(part.Data)
			if len(data) == 0 {
				continue
			}
			if data[0] == '[' {
				var items []MessagePart
				if err := json.Unmarshal(data, &items); err == nil {
					for _, item := range items {
						if t := cleanText(item.Text); item.Kind == PartText && t != "" {
							history = append(history, t)
						}
					}
				}
				continue
			}
			if err := json.Unmarshal(data, &req); err != nil {
				return req, &selection.ValidationError{
					Code:    selection.CodeInvalidRequest,
					Message: fmt.Sprintf("The data part could not be read: %v", err),
				}
			}
		}
	}

	if theme := strings.TrimSpace(strings.Join(texts, " ")); theme != "" && strings.TrimSpace(req.Theme) == "" {
		req.Theme = theme
	}
	if strings.TrimSpace(req.Theme) == "" && len(history) > 0 {
		req.Theme = history[len(history)-1]
	}
	if strings.TrimSpace(req.Theme) == "" {
		return req, &selection.ValidationError{
			Code:    selection.CodeEmptyTheme,
			Message: "Please send a central theme to generate content about.",
		}
	}
	return req, nil
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, "<p>", "")
	s = strings.ReplaceAll(s, "</p>", "")
	return strings.TrimSpace(s)
}

// ServeAgentCard serves the agent card built from the catalog.
func (h *A2AHandler) ServeAgentCard(c *gin.Context) {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	c.JSON(http.StatusOK, BuildAgentCard(scheme+"://"+c.Request.Host, h.version))
}

func (h *A2AHandler) createErrorTaskResult(taskID, contextID, state, errorMsg string) TaskResult {
	return TaskResult{
		ID:        taskID,
		ContextID: contextID,
		Kind:      "task",
		Status: TaskStatus{
			State:     state,
			Timestamp: Timestamp(),
			Message: &A2AMessage{
				Kind:      "message",
				Role:      RoleAgent,
				MessageID: uuid.New().String(),
				TaskID:    taskID,
				Parts:     []MessagePart{TextPart(errorMsg)},
			},
		},
	}
}

func (h *A2AHandler) sendSuccessResponse(c *gin.Context, id any, result TaskResult) {
	h.logger.Debug("A2A task finished", slog.String("task_id", result.ID), slog.String("state", result.Status.State))
	c.JSON(http.StatusOK, JSONRPCResponse{JSONRPC: "2.0", ID: id, Result: result})
}

// sendErrorResponse replies with a JSON-RPC error. These are sent with 200 OK.
func (h *A2AHandler) sendErrorResponse(c *gin.Context, id any, message string, code int) {
	h.logger.Warn("A2A RPC error", slog.Int("code", code), slog.String("message", message))
	c.JSON(http.StatusOK, JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &JSONRPCError{Code: code, Message: message},
	})
}
