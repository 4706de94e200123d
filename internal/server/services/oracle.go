package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/dmitrijs2005/timevault/internal/server/oracle"
)

// checkAccess asks the oracle about handle and folds the answer into the
// error taxonomy: nil on grant, ErrAccessDenied on a denial and
// ErrOracleUnavailable on any failure.
func checkAccess(ctx context.Context, o oracle.Oracle, handle string) error {
	granted, err := o.Check(ctx, handle)
	if err != nil {
		if errors.Is(err, common.ErrOracleUnavailable) {
			return err
		}
		return fmt.Errorf("%w: %v", common.ErrOracleUnavailable, err)
	}
	if !granted {
		return common.ErrAccessDenied
	}
	return nil
}
