package gateway

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/logger"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/metrics"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/validation"
)

// Querier is the subset of pgxpool.Pool and pgx.Tx the gateway needs
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Gateway invokes the hosted backend's stored functions. Every response is
// schema-validated before it is decoded, so callers receive either a fully
// populated result or an error.
type Gateway interface {
	CompleteSession(ctx context.Context, req domain.CompletionRequest) (*domain.CompletionResult, error)
	RestoreHP(ctx context.Context, req domain.HPRestoreRequest) (*domain.HPRestoreResult, error)
	AddXP(ctx context.Context, award domain.XPAward) (*domain.XPResult, error)
	AddCXP(ctx context.Context, award domain.CXPAward) (*domain.CXPResult, error)
	ProcessTokenRedemption(ctx context.Context, req domain.TokenRedemption) (*domain.TokenRedemptionResult, error)
	InitializeMonthlyTokenPool(ctx context.Context, req domain.TokenPoolInit) (*domain.TokenPoolResult, error)
}

var knownFunctions = map[string]bool{
	domain.RPCCompleteSessionUnified:     true,
	domain.RPCRestoreHP:                  true,
	domain.RPCAddXP:                      true,
	domain.RPCAddCXP:                     true,
	domain.RPCProcessTokenRedemption:     true,
	domain.RPCInitializeMonthlyTokenPool: true,
}

var identifierPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

type pgGateway struct {
	db      Querier
	schemas validation.SchemaValidator
	timeout time.Duration
}

// New creates a Gateway backed by db. A non-positive timeout uses DefaultTimeout.
func New(db Querier, schemas validation.SchemaValidator, timeout time.Duration) Gateway {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &pgGateway{db: db, schemas: schemas, timeout: timeout}
}

type namedArg struct {
	name  string
	value any
}

// buildCall renders a named-notation call of a known function. Values are
// always bound as parameters.
func buildCall(function string, args []namedArg) (string, []any, error) {
	if !knownFunctions[function] {
		return "", nil, fmt.Errorf("%w: %s", domain.ErrUnknownRPC, function)
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(functionSchema)
	sb.WriteByte('.')
	sb.WriteString(function)
	sb.WriteByte('(')

	values := make([]any, 0, len(args))
	for i, arg := range args {
		if !identifierPattern.MatchString(arg.name) {
			return "", nil, fmt.Errorf(ErrMsgInvalidParamName, arg.name)
		}
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.name)
		sb.WriteString(" => $")
		sb.WriteString(strconv.Itoa(i + 1))
		values = append(values, arg.value)
	}
	sb.WriteString(")::jsonb")

	return sb.String(), values, nil
}

// call runs function and decodes its validated response into dst
func (g *pgGateway) call(ctx context.Context, function string, args []namedArg, dst any) error {
	query, values, err := buildCall(function, args)
	if err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	log.Debug(LogMsgCallingRemote, "function", function)

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	var raw []byte
	err = g.db.QueryRow(ctx, query, values...).Scan(&raw)
	metrics.RPCDuration.WithLabelValues(function).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.RPCFailures.WithLabelValues(function, metrics.ReasonTransport).Inc()
		log.Error(LogMsgRemoteFailed, "function", function, "error", err)
		return fmt.Errorf(ErrMsgRemoteFailed, domain.ErrRemoteUnavailable, function, err)
	}
	if raw == nil {
		metrics.RPCFailures.WithLabelValues(function, metrics.ReasonMalformed).Inc()
		return fmt.Errorf(ErrMsgNullResponse, domain.ErrMalformedResponse, function)
	}

	if err := g.schemas.Decode(raw, function, dst); err != nil {
		metrics.RPCFailures.WithLabelValues(function, metrics.ReasonMalformed).Inc()
		log.Error(LogMsgRemoteMalformed, "function", function, "error", err)
		return fmt.Errorf(ErrMsgBadResponse, domain.ErrMalformedResponse, function, err)
	}

	return nil
}

func (g *pgGateway) rejected(ctx context.Context, function, remoteErr string) error {
	metrics.RPCFailures.WithLabelValues(function, metrics.ReasonRejected).Inc()
	logger.FromContext(ctx).Warn(LogMsgRemoteRejected, "function", function, "remote_error", remoteErr)
	if remoteErr == "" {
		remoteErr = "no reason given"
	}
	return fmt.Errorf(ErrMsgRejected, domain.ErrRemoteRejected, function, remoteErr)
}

// nullable maps an empty string to SQL NULL
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// CompleteSession settles a session. A backend rollback is reported as
// domain.ErrSessionRolledBack together with the decoded result.
func (g *pgGateway) CompleteSession(ctx context.Context, req domain.CompletionRequest) (*domain.CompletionResult, error) {
	var result domain.CompletionResult
	err := g.call(ctx, domain.RPCCompleteSessionUnified, []namedArg{
		{ParamSessionID, req.SessionID},
		{ParamWinnerID, nullable(req.WinnerID)},
		{ParamWinningTeam, nullable(req.WinningTeam)},
		{ParamCompletionData, req.Data},
	}, &result)
	if err != nil {
		return nil, err
	}

	if !result.Success {
		if result.Rollback {
			metrics.RPCFailures.WithLabelValues(domain.RPCCompleteSessionUnified, metrics.ReasonRollback).Inc()
			logger.FromContext(ctx).Warn(LogMsgRolledBack, "session_id", req.SessionID, "remote_error", result.Error)
			return &result, fmt.Errorf("%w: %s", domain.ErrSessionRolledBack, result.Error)
		}
		return &result, g.rejected(ctx, domain.RPCCompleteSessionUnified, result.Error)
	}

	return &result, nil
}

func (g *pgGateway) RestoreHP(ctx context.Context, req domain.HPRestoreRequest) (*domain.HPRestoreResult, error) {
	var result domain.HPRestoreResult
	err := g.call(ctx, domain.RPCRestoreHP, []namedArg{
		{ParamUserID, req.UserID},
		{ParamRestorationAmount, req.Amount},
		{ParamActivityType, req.ActivityType},
		{ParamDescription, req.Description},
	}, &result)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, g.rejected(ctx, domain.RPCRestoreHP, "")
	}
	return &result, nil
}

func (g *pgGateway) AddXP(ctx context.Context, award domain.XPAward) (*domain.XPResult, error) {
	var result domain.XPResult
	err := g.call(ctx, domain.RPCAddXP, []namedArg{
		{ParamUserID, award.UserID},
		{ParamXPAmount, award.Amount},
		{ParamActivityType, award.ActivityType},
		{ParamDescription, award.Description},
	}, &result)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, g.rejected(ctx, domain.RPCAddXP, "")
	}
	return &result, nil
}

func (g *pgGateway) AddCXP(ctx context.Context, award domain.CXPAward) (*domain.CXPResult, error) {
	var result domain.CXPResult
	err := g.call(ctx, domain.RPCAddCXP, []namedArg{
		{ParamCoachID, award.CoachID},
		{ParamCXPAmount, award.Amount},
		{ParamActivityType, award.ActivityType},
		{ParamDescription, award.Description},
	}, &result)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, g.rejected(ctx, domain.RPCAddCXP, "")
	}
	return &result, nil
}

// ProcessTokenRedemption spends club tokens. CashAmount is bound as text and
// cast to numeric by the backend.
func (g *pgGateway) ProcessTokenRedemption(ctx context.Context, req domain.TokenRedemption) (*domain.TokenRedemptionResult, error) {
	var result domain.TokenRedemptionResult
	err := g.call(ctx, domain.RPCProcessTokenRedemption, []namedArg{
		{ParamClubID, req.ClubID},
		{ParamPlayerID, req.PlayerID},
		{ParamServiceType, req.ServiceType},
		{ParamTokensUsed, req.TokensUsed},
		{ParamCashAmount, req.CashAmount},
		{ParamDescription, req.Description},
	}, &result)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return &result, g.rejected(ctx, domain.RPCProcessTokenRedemption, result.Error)
	}
	metrics.TokensRedeemed.Add(float64(result.TokensUsed))
	return &result, nil
}

func (g *pgGateway) InitializeMonthlyTokenPool(ctx context.Context, req domain.TokenPoolInit) (*domain.TokenPoolResult, error) {
	var result domain.TokenPoolResult
	err := g.call(ctx, domain.RPCInitializeMonthlyTokenPool, []namedArg{
		{ParamClubID, req.ClubID},
		{ParamMonthYear, req.MonthYear},
		{ParamAllocatedTokens, req.AllocatedTokens},
	}, &result)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return &result, g.rejected(ctx, domain.RPCInitializeMonthlyTokenPool, result.Error)
	}
	return &result, nil
}
