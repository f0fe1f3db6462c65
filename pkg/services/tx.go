package services

import (
	"fmt"

	"github.com/hireflow/scout/ent"
)

// rollback rolls a transaction back, folding any rollback failure into the
// original error.
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
	}
	return err
}
