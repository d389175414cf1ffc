package respond

import (
	"encoding/json"
	"net/http"
)

func JSON(w http.ResponseWriter, r *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func Error(w http.ResponseWriter, r *http.Request, code int, message string) {
	JSON(w, r, code, map[string]string{"error": message})
}

// Result отдает строку-статус ассистенту: у ассистента всегда должен быть ответ
func Result(w http.ResponseWriter, r *http.Request, result string) {
	JSON(w, r, http.StatusOK, map[string]string{"result": result})
}
