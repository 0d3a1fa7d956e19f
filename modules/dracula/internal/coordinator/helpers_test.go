package coordinator

import (
	"github.com/soldracula/dracula/modules/dracula/internal/entity"
	"github.com/soldracula/dracula/pkg/solana"
)

func entityProgress(txid string, asset solana.PublicKey, lastStep int, signature string) entity.AppendProgress {
	return entity.AppendProgress{
		TxID:              txid,
		Asset:             asset.String(),
		LastCompletedStep: lastStep,
		TotalSteps:        6,
		LastSignature:     signature,
		Attempts:          1,
	}
}
