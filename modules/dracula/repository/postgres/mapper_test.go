package postgres

import (
	"testing"
	"time"

	"github.com/soldracula/dracula/modules/dracula/internal/entity"
	"github.com/soldracula/dracula/modules/dracula/repository/postgres/gen"
	"github.com/stretchr/testify/assert"
)

func TestProgressMapping(t *testing.T) {
	progress := entity.AppendProgress{
		TxID:              "5VERv8NMvzbJMEkV8xnrLkEaWRtSz9CosKDYjCJjBRnbJLgp8uirBgmQpjKhoR4tjF3ZpRzrFmBV6UjKdiSZkQUW",
		Asset:             "JEKNVnkbo3jma5nREBBJCDoXFVeKkD56V3xKrvRmWxFG",
		LastCompletedStep: 3,
		TotalSteps:        6,
		LastSignature:     "sig4",
		Attempts:          2,
		UpdatedAt:         time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC),
	}

	params := mapProgressTypeToParams(progress)
	assert.Equal(t, int32(3), params.LastCompletedStep)
	assert.True(t, params.UpdatedAt.Valid)

	// the row shares the params layout
	assert.Equal(t, progress, mapProgressModelToType(gen.DraculaAppendProgress(params)))
}

func TestProgressMappingZeroTime(t *testing.T) {
	params := mapProgressTypeToParams(entity.AppendProgress{TxID: "tx", LastCompletedStep: -1})
	assert.False(t, params.UpdatedAt.Valid)
	assert.Equal(t, int32(-1), params.LastCompletedStep)
}
