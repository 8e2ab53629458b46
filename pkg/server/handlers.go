package server

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vango-dev/vmini/internal/errors"
	"github.com/vango-dev/vmini/pkg/dom"
)

// maxBodyBytes caps POST bodies.
const maxBodyBytes = 1 << 20

// treeResponse is the body of a successful mutation.
type treeResponse struct {
	HTML string `json:"html"`
	Ran  *int   `json:"ran,omitempty"`
}

// errorResponse is the body of a failed request.
type errorResponse struct {
	Code  string `json:"code,omitempty"`
	Error string `json:"error"`
}

// dispatchBody is the optional body of POST /dispatch.
type dispatchBody struct {
	Value any `json:"value"`
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	body := s.HTML()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := writePage(w, s.config.Title, body); err != nil {
		s.logger.Debug("write page failed", "error", err)
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.hub.upgrade(w, r)
	if err != nil {
		s.logger.Debug("websocket upgrade failed", "error", err)
		return
	}

	s.mu.Lock()
	err = s.hub.add(conn, Message{Type: MessageHTML, HTML: s.root.InnerHTML()})
	s.mu.Unlock()
	if err != nil {
		s.logger.Debug("websocket initial write failed", "error", err)
		conn.Close()
		return
	}

	s.hub.listen(conn)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	data, err := json.Marshal(s.inst.Store().Snapshot())
	s.mu.Unlock()
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (s *Server) handleSet(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var value any
	if err := decodeBody(w, r, &value); err != nil {
		s.writeError(w, err)
		return
	}

	s.mu.Lock()
	err := s.inst.Store().Set(key, value)
	s.push()
	html := s.root.InnerHTML()
	s.mu.Unlock()

	if err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Debug("set", "key", key)
	writeJSON(w, http.StatusOK, treeResponse{HTML: html})
}

func (s *Server) handleDispatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	event := chi.URLParam(r, "event")

	var body dispatchBody
	if err := decodeBody(w, r, &body); err != nil && !stderrors.Is(err, io.EOF) {
		s.writeError(w, err)
		return
	}

	s.mu.Lock()
	el := s.root.FindByID(id)
	if el == nil {
		s.mu.Unlock()
		s.writeError(w, errors.New("E014").WithDetail("no element with id "+id))
		return
	}
	ran, err := el.Dispatch(event, &dom.Event{Payload: body.Value})
	s.push()
	html := s.root.InnerHTML()
	s.mu.Unlock()

	if err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Debug("dispatch", "id", id, "event", event, "listeners", ran)
	writeJSON(w, http.StatusOK, treeResponse{HTML: html, Ran: &ran})
}

// decodeBody decodes a JSON body into v. An empty body yields io.EOF.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if stderrors.Is(err, io.EOF) {
			return err
		}
		return errors.New("E022").Wrap(err)
	}
	if dec.More() {
		return errors.New("E022").WithDetail("trailing data after the JSON value")
	}
	return nil
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	resp := errorResponse{Error: err.Error()}

	var ve *errors.Error
	if stderrors.As(err, &ve) {
		resp.Code = ve.Code
		switch ve.Code {
		case "E014", "E005":
			status = http.StatusNotFound
		case "E022":
			status = http.StatusBadRequest
		}
	} else if stderrors.Is(err, io.EOF) {
		status = http.StatusBadRequest
		resp = errorResponse{Code: "E022", Error: "empty request body"}
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
