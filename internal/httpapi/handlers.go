package httpapi

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/alexanderramin/braindump/internal/compression"
	"github.com/alexanderramin/braindump/internal/domain"
	"github.com/alexanderramin/braindump/internal/nudge"
	"github.com/alexanderramin/braindump/internal/scheduler"
	"github.com/go-playground/validator/v10"
)

type compressRequest struct {
	Text     string             `json:"text"`
	Capacity *domain.AICapacity `json:"capacity" validate:"omitempty,oneof=light medium full"`
}

type compressResponse struct {
	Success bool          `json:"success"`
	Tasks   []domain.Task `json:"tasks"`
}

type scheduleRequest struct {
	Tasks       []domain.Task       `json:"tasks" validate:"dive"`
	Preferences *domain.Preferences `json:"preferences" validate:"omitempty"`
}

type nudgesResponse struct {
	Nudges []domain.Nudge `json:"nudges"`
}

type itemsRequest struct {
	Capacity domain.SliceCapacity `json:"capacity" validate:"required,oneof=low medium high"`
	Items    []domain.Item        `json:"items"`
	Override int                  `json:"override"`
}

type itemsResponse struct {
	Items []domain.Item `json:"items"`
}

const msgInvalidPreferences = "preferences need positive breakDuration and maxConsecutiveTasks and an HH:MM preferredStartTime"

func invalidPreferences(err error) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if strings.Contains(fe.Namespace(), ".Preferences.") {
			return true
		}
	}
	return false
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCompress(w http.ResponseWriter, r *http.Request) {
	var req compressRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "capacity must be light, medium or full")
		return
	}

	res := s.deps.Compress.Compress(r.Context(), req.Text, req.Capacity)
	if !res.Success {
		status := http.StatusInternalServerError
		if errors.Is(res.Err, compression.ErrEmptyInput) {
			status = http.StatusBadRequest
		}
		writeError(w, status, res.Error)
		return
	}
	writeJSON(w, http.StatusOK, compressResponse{Success: true, Tasks: res.Tasks})
}

// handleCompressStream relays the raw AI output as it arrives. The body is
// not validated; clients parse it once the stream ends.
func (s *Server) handleCompressStream(w http.ResponseWriter, r *http.Request) {
	var req compressRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "capacity must be light, medium or full")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, compression.MsgEmptyInput)
		return
	}

	rc, err := s.deps.Compress.StreamCompress(r.Context(), req.Text, req.Capacity)
	if errors.Is(err, compression.ErrEmptyInput) {
		writeError(w, http.StatusBadRequest, compression.MsgEmptyInput)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)
	buf := make([]byte, 4096)
	for {
		n, readErr := rc.Read(buf)
		if n > 0 {
			if _, err := w.Write(buf[:n]); err != nil {
				return
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
		if readErr != nil {
			if !errors.Is(readErr, io.EOF) {
				s.logger.Warn("stream_aborted", "error", readErr)
			}
			return
		}
	}
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		msg := compression.MsgInvalidStructure
		if invalidPreferences(err) {
			msg = msgInvalidPreferences
		}
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	plan, err := s.deps.Plan.PlanTasks(s.opts.Now(), req.Tasks, req.Preferences)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if plan.Tasks == nil {
		plan.Tasks = []domain.Task{}
	}
	if plan.Timeline == nil {
		plan.Timeline = []scheduler.Slot{}
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleNudges(w http.ResponseWriter, r *http.Request) {
	var nctx nudge.Context
	if err := decodeJSON(w, r, &nctx); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(nctx); err != nil {
		writeError(w, http.StatusBadRequest, "invalid nudge context")
		return
	}

	nudges := s.deps.Nudges.Evaluate(nctx)
	if nudges == nil {
		nudges = []domain.Nudge{}
	}
	writeJSON(w, http.StatusOK, nudgesResponse{Nudges: nudges})
}

func (s *Server) handleItemsCompress(w http.ResponseWriter, r *http.Request) {
	var req itemsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "capacity must be low, medium or high")
		return
	}

	visible := compression.PinEmotional(req.Items, compression.CompressItems(req.Capacity, req.Items, req.Override))
	if visible == nil {
		visible = []domain.Item{}
	}
	writeJSON(w, http.StatusOK, itemsResponse{Items: visible})
}
