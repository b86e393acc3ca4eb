package grpc

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/wealthflow-ledger/internal/domain"
	"github.com/simaogato/wealthflow-ledger/internal/usecase/dashboard"
	"github.com/simaogato/wealthflow-ledger/internal/usecase/investment"
	"github.com/simaogato/wealthflow-ledger/internal/usecase/session"
)

// ErrorDomain is the ErrorInfo domain attached to rejected submissions
const ErrorDomain = "ledger.wealthflow"

// Server implements the LedgerService gRPC server
type Server struct {
	SessionService    *session.SessionService
	InvestmentService *investment.InvestmentService
	DashboardService  *dashboard.DashboardService
}

var _ LedgerServiceServer = (*Server)(nil)

// NewServer creates a new gRPC server instance
func NewServer(
	sessionService *session.SessionService,
	investmentService *investment.InvestmentService,
	dashboardService *dashboard.DashboardService,
) *Server {
	return &Server{
		SessionService:    sessionService,
		InvestmentService: investmentService,
		DashboardService:  dashboardService,
	}
}

// StartSession handles the StartSession RPC
func (s *Server) StartSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sess, err := s.SessionService.StartSession(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	return newStruct(map[string]any{
		"session_id": sess.ID.String(),
		"started_at": formatTime(sess.StartedAt),
	})
}

// EndSession handles the EndSession RPC
func (s *Server) EndSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := parseUUIDField(req, "session_id")
	if err != nil {
		return nil, err
	}

	ended, err := s.SessionService.EndSession(ctx, sessionID)
	if err != nil {
		return nil, mapError(err)
	}

	return newStruct(map[string]any{"ended": ended})
}

// AddInvestment handles the AddInvestment RPC
func (s *Server) AddInvestment(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := parseUUIDField(req, "session_id")
	if err != nil {
		return nil, err
	}

	profitRate, amount, err := figureFields(req)
	if err != nil {
		return nil, err
	}

	form := domain.InvestmentForm{
		Name:       stringField(req, "name"),
		ProfitRate: profitRate,
		Amount:     amount,
		Mode:       inputMode(req),
	}

	inv, err := s.InvestmentService.AddInvestment(ctx, sessionID, form)
	if err != nil {
		return nil, mapError(err)
	}

	return newStruct(map[string]any{"investment": investmentToMap(inv)})
}

// RemoveInvestment handles the RemoveInvestment RPC
func (s *Server) RemoveInvestment(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := parseUUIDField(req, "session_id")
	if err != nil {
		return nil, err
	}

	investmentID, err := parseUUIDField(req, "investment_id")
	if err != nil {
		return nil, err
	}

	removed, err := s.InvestmentService.RemoveInvestment(ctx, sessionID, investmentID)
	if err != nil {
		return nil, mapError(err)
	}

	return newStruct(map[string]any{"removed": removed})
}

// ListInvestments handles the ListInvestments RPC
func (s *Server) ListInvestments(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := parseUUIDField(req, "session_id")
	if err != nil {
		return nil, err
	}

	investments, err := s.InvestmentService.ListInvestments(ctx, sessionID)
	if err != nil {
		return nil, mapError(err)
	}

	// Always a list (even if empty) so clients never see a missing field
	list := make([]any, 0, len(investments))
	for _, inv := range investments {
		list = append(list, investmentToMap(inv))
	}

	return newStruct(map[string]any{"investments": list})
}

// GetSummary handles the GetSummary RPC
func (s *Server) GetSummary(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := parseUUIDField(req, "session_id")
	if err != nil {
		return nil, err
	}

	summary, err := s.DashboardService.GetSummary(ctx, sessionID)
	if err != nil {
		return nil, mapError(err)
	}

	items := make([]any, 0, len(summary.Items))
	for _, item := range summary.Items {
		items = append(items, investmentToMap(item.Investment))
	}

	agg := summary.Aggregates
	return newStruct(map[string]any{
		"aggregates": map[string]any{
			"count":               agg.Count,
			"total_capital":       agg.TotalCapital.String(),
			"total_profit":        agg.TotalProfit.String(),
			"overall_profit_rate": agg.OverallProfitRate.String(),
			"total_value":         agg.TotalValue.String(),
		},
		"items": items,
	})
}

// GetCategoryBreakdown handles the GetCategoryBreakdown RPC
func (s *Server) GetCategoryBreakdown(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := parseUUIDField(req, "session_id")
	if err != nil {
		return nil, err
	}

	breakdown, err := s.DashboardService.GetCategoryBreakdown(ctx, sessionID)
	if err != nil {
		return nil, mapError(err)
	}

	categories := make([]any, 0, len(breakdown))
	for _, total := range breakdown {
		categories = append(categories, map[string]any{
			"category":    string(total.Category),
			"count":       total.Count,
			"capital":     total.Capital.String(),
			"profit":      total.Profit.String(),
			"total_value": total.TotalValue.String(),
		})
	}

	return newStruct(map[string]any{"categories": categories})
}

// Classify handles the Classify RPC
func (s *Server) Classify(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return newStruct(map[string]any{
		"category": string(domain.Classify(stringField(req, "name"))),
	})
}

// PreviewCapital handles the PreviewCapital RPC
func (s *Server) PreviewCapital(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	profitRate, amount, err := figureFields(req)
	if err != nil {
		return nil, err
	}

	capital, err := s.InvestmentService.PreviewCapital(profitRate, amount, inputMode(req))
	if err != nil {
		return nil, mapError(err)
	}

	return newStruct(map[string]any{"capital": capital.String()})
}

// investmentToMap converts a domain Investment to its wire representation
// Decimals travel as strings to keep their exact value
func investmentToMap(inv *domain.Investment) map[string]any {
	return map[string]any{
		"id":          inv.ID.String(),
		"name":        inv.Name,
		"capital":     inv.Capital.String(),
		"profit_rate": inv.ProfitRate.String(),
		"profit":      inv.Profit().String(),
		"total_value": inv.TotalValue().String(),
		"category":    string(inv.Category()),
		"created_at":  formatTime(inv.CreatedAt),
	}
}

// inputMode reads the mode field. Unrecognised values are passed through as-is
// so the domain rejects them after the name and figures are checked.
func inputMode(req *structpb.Struct) domain.InputMode {
	raw := stringField(req, "mode")
	if mode, ok := domain.ParseInputMode(raw); ok {
		return mode
	}
	return domain.InputMode(raw)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func stringField(req *structpb.Struct, key string) string {
	return req.GetFields()[key].GetStringValue()
}

// numericField reads a field that may be sent as text or as a JSON number
// Missing fields read as "" and are rejected by validation as unparseable.
func numericField(req *structpb.Struct, key string) (string, error) {
	v, ok := req.GetFields()[key]
	if !ok {
		return "", nil
	}

	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return kind.StringValue, nil
	case *structpb.Value_NumberValue:
		return strconv.FormatFloat(kind.NumberValue, 'f', -1, 64), nil
	case *structpb.Value_NullValue:
		return "", nil
	default:
		return "", status.Errorf(codes.InvalidArgument, "%s must be a string or a number", key)
	}
}

func figureFields(req *structpb.Struct) (profitRate, amount string, err error) {
	if profitRate, err = numericField(req, "profit_rate"); err != nil {
		return "", "", err
	}
	if amount, err = numericField(req, "amount"); err != nil {
		return "", "", err
	}
	return profitRate, amount, nil
}

// parseUUIDField reads a required UUID field, returning an InvalidArgument status on failure
func parseUUIDField(req *structpb.Struct, key string) (uuid.UUID, error) {
	id, err := uuid.Parse(stringField(req, key))
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", key, err)
	}
	return id, nil
}

func newStruct(fields map[string]any) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode response: %v", err)
	}
	return out, nil
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	// Rejections carry their reason as an ErrorInfo detail
	if reason, ok := domain.IsRejection(err); ok {
		st := status.New(codes.InvalidArgument, err.Error())
		detailed, detailErr := st.WithDetails(&errdetails.ErrorInfo{
			Reason:   errorInfoReason(reason),
			Domain:   ErrorDomain,
			Metadata: map[string]string{"reason": string(reason)},
		})
		if detailErr != nil {
			return st.Err()
		}
		return detailed.Err()
	}

	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return status.Errorf(codes.NotFound, "%s", err.Error())
	case errors.Is(err, domain.ErrSessionLimit):
		return status.Errorf(codes.ResourceExhausted, "%s", err.Error())
	case errors.Is(err, context.Canceled):
		return status.Errorf(codes.Canceled, "%s", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Errorf(codes.DeadlineExceeded, "%s", err.Error())
	}

	// Default to Internal error for unknown errors
	return status.Errorf(codes.Internal, "%s", err.Error())
}

// errorInfoReason turns "empty-name" into "EMPTY_NAME", the ErrorInfo convention
func errorInfoReason(reason domain.RejectionReason) string {
	return strings.ToUpper(strings.ReplaceAll(string(reason), "-", "_"))
}
