package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/psisite/internal/content"
	"github.com/psisite/internal/db"
	"github.com/psisite/internal/service"
)

type configSaveRequest struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// ListConfig 返回全部配置项
func (a *API) ListConfig(c *gin.Context) {
	entries, err := a.cache.Entries()
	if err != nil {
		logHandlerError("config", err)
		respondError(c, http.StatusInternalServerError, "Erro ao carregar configurações")
		return
	}
	if entries == nil {
		entries = []db.ConfigEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

// SaveConfig upserts one key and patches the cached list with the stored row.
func (a *API) SaveConfig(c *gin.Context) {
	var payload configSaveRequest
	if !bindJSON(c, &payload, "Dados de configuração inválidos") {
		return
	}
	if len(payload.Value) == 0 {
		respondError(c, http.StatusBadRequest, "Informe o valor da configuração")
		return
	}

	entry, err := a.configs.Save(payload.Key, payload.Value)
	if err != nil {
		handleConfigError(c, err)
		return
	}

	a.cache.Patch(entry)
	c.JSON(http.StatusOK, entry)
}

func handleConfigError(c *gin.Context, err error) {
	if fields, ok := content.AsFieldErrors(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Verifique os campos destacados", "fields": fields})
		return
	}
	switch {
	case errors.Is(err, service.ErrConfigKeyMissing):
		respondError(c, http.StatusBadRequest, "Informe a chave da configuração")
	case errors.Is(err, service.ErrConfigKeyInvalid):
		respondError(c, http.StatusBadRequest, "Chave de configuração inválida")
	case errors.Is(err, service.ErrConfigValueInvalid):
		respondError(c, http.StatusBadRequest, "Valor de configuração inválido")
	default:
		logHandlerError("config", err)
		respondError(c, http.StatusInternalServerError, "Erro ao salvar configuração")
	}
}
