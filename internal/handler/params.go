package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// pathID binds a positive integer path parameter. On failure it writes a
// 400 and returns false.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil || id <= 0 {
		requestError(w, "invalid path parameter "+name)
		return 0, false
	}
	return id, true
}

// queryParam binds a query parameter into dest (a pointer for optional
// parameters). On failure it writes a 400 and returns false.
func queryParam(w http.ResponseWriter, r *http.Request, name string, required bool, dest any) bool {
	if err := runtime.BindQueryParameter("form", true, required, name, r.URL.Query(), dest); err != nil {
		requestError(w, "invalid query parameter "+name)
		return false
	}
	return true
}

// derefString safely dereferences a *string, returning "" when nil.
func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// nilIfEmpty converts an empty string to a nil pointer.
// Used when mapping domain strings to optional API response fields.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
