package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/careercompass/backend/config"
)

func TestSwaggerInfo_MatchesDefaultServer(t *testing.T) {
	t.Setenv("PORT", "")
	cfg := config.Load()

	assert.Equal(t, "localhost:"+cfg.Port, SwaggerInfo.Host)
	assert.Equal(t, "/api/v1", SwaggerInfo.BasePath)
}
