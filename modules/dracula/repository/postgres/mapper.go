package postgres

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/soldracula/dracula/modules/dracula/internal/entity"
	"github.com/soldracula/dracula/modules/dracula/repository/postgres/gen"
)

func mapProgressModelToType(src gen.DraculaAppendProgress) entity.AppendProgress {
	return entity.AppendProgress{
		TxID:              src.Txid,
		Asset:             src.Asset,
		LastCompletedStep: int(src.LastCompletedStep),
		TotalSteps:        int(src.TotalSteps),
		LastSignature:     src.LastSignature,
		Attempts:          int(src.Attempts),
		Completed:         src.Completed,
		UpdatedAt:         src.UpdatedAt.Time.UTC(),
	}
}

func mapProgressTypeToParams(src entity.AppendProgress) gen.UpsertAppendProgressParams {
	return gen.UpsertAppendProgressParams{
		Txid:              src.TxID,
		Asset:             src.Asset,
		LastCompletedStep: int32(src.LastCompletedStep),
		TotalSteps:        int32(src.TotalSteps),
		LastSignature:     src.LastSignature,
		Attempts:          int32(src.Attempts),
		Completed:         src.Completed,
		UpdatedAt:         pgtype.Timestamptz{Time: src.UpdatedAt, Valid: !src.UpdatedAt.IsZero()},
	}
}
