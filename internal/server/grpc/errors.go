package grpc

import (
	"github.com/dmitrijs2005/timevault/internal/common"
	pb "github.com/dmitrijs2005/timevault/internal/proto"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var codeByReason = map[string]codes.Code{
	common.ReasonAccessDenied:           codes.PermissionDenied,
	common.ReasonOracleUnavailable:      codes.Unavailable,
	common.ReasonTokenInvalidOrExpired:  codes.PermissionDenied,
	common.ReasonTokenHandleMismatch:    codes.PermissionDenied,
	common.ReasonContentUnavailable:     codes.NotFound,
	common.ReasonRegistrationIncomplete: codes.FailedPrecondition,
	common.ReasonIntegrityFailure:       codes.DataLoss,
	common.ReasonInvalidRequest:         codes.InvalidArgument,
	common.ReasonUnauthorized:           codes.Unauthenticated,
	common.ReasonInternal:               codes.Internal,
}

// toStatus converts a service error into a status carrying an ErrorInfo
// with the reason string.
func toStatus(err error) error {
	reason := common.Reason(err)

	msg := err.Error()
	if reason == common.ReasonInternal {
		msg = common.ErrorInternal.Error()
	}

	st := status.New(codeByReason[reason], msg)
	if withInfo, derr := st.WithDetails(&errdetails.ErrorInfo{Reason: reason, Domain: pb.ErrorDomain}); derr == nil {
		st = withInfo
	}
	return st.Err()
}
