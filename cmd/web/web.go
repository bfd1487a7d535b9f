package web

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"flatdb/database"
	"flatdb/executor"
	"flatdb/parser"
)

// QueryAPI exposes the database over HTTP: POST /query with a JSON
// body {"sql": "..."} executes one statement.
type QueryAPI struct {
	db  *database.Database
	log *logrus.Entry
}

func New(db *database.Database) *QueryAPI {
	return &QueryAPI{db: db, log: logrus.WithField("component", "web")}
}

type queryRequest struct {
	SQL string `json:"sql"`
}

// Handle serves one query request.
func (api *QueryAPI) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.SQL == "" {
		http.Error(w, "Missing 'sql' field", http.StatusBadRequest)
		return
	}

	res, err := api.db.Execute(req.SQL)
	if err != nil {
		api.log.WithError(err).Warn("statement failed")
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(responseFor(res)); err != nil {
		api.log.WithError(err).Warn("writing response failed")
	}
}

// statusFor maps statement errors to 400 and everything else (storage
// failures) to 500.
func statusFor(err error) int {
	var unsupported *parser.UnsupportedStatementError
	var malformed *parser.MalformedStatementError
	if errors.As(err, &unsupported) || errors.As(err, &malformed) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func responseFor(res *executor.Result) map[string]interface{} {
	switch res.Type {
	case parser.StatementSelect:
		return map[string]interface{}{"rows": res.Rows}
	case parser.StatementInsert:
		return map[string]interface{}{"row": res.Inserted}
	case parser.StatementUpdate:
		return map[string]interface{}{"updated": res.Updated}
	default:
		return map[string]interface{}{"ok": true}
	}
}
