package grpc

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/wealthflow-ledger/internal/domain"
)

// InvestmentView is an investment as returned over the wire
type InvestmentView struct {
	ID         uuid.UUID
	Name       string
	Capital    decimal.Decimal
	ProfitRate decimal.Decimal
	Profit     decimal.Decimal
	TotalValue decimal.Decimal
	Category   domain.Category
}

// SummaryView is the decoded GetSummary response
type SummaryView struct {
	Aggregates domain.Aggregates
	Items      []InvestmentView
}

// CategoryTotalView is one line of the GetCategoryBreakdown response
type CategoryTotalView struct {
	Category   domain.Category
	Count      int
	Capital    decimal.Decimal
	Profit     decimal.Decimal
	TotalValue decimal.Decimal
}

// Client is a typed client for the ledger service
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps an existing connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) invoke(ctx context.Context, method string, fields map[string]any, opts ...grpc.CallOption) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", method, err)
	}

	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// StartSession starts a session and returns its ID
func (c *Client) StartSession(ctx context.Context, opts ...grpc.CallOption) (uuid.UUID, error) {
	out, err := c.invoke(ctx, "StartSession", map[string]any{}, opts...)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(stringField(out, "session_id"))
}

// EndSession ends a session; ended is false if the session did not exist
func (c *Client) EndSession(ctx context.Context, sessionID uuid.UUID, opts ...grpc.CallOption) (bool, error) {
	out, err := c.invoke(ctx, "EndSession", map[string]any{"session_id": sessionID.String()}, opts...)
	if err != nil {
		return false, err
	}
	return out.GetFields()["ended"].GetBoolValue(), nil
}

// AddInvestment submits a form; mode is one of the names accepted by domain.ParseInputMode
func (c *Client) AddInvestment(ctx context.Context, sessionID uuid.UUID, name, profitRate, amount, mode string, opts ...grpc.CallOption) (*InvestmentView, error) {
	out, err := c.invoke(ctx, "AddInvestment", map[string]any{
		"session_id":  sessionID.String(),
		"name":        name,
		"profit_rate": profitRate,
		"amount":      amount,
		"mode":        mode,
	}, opts...)
	if err != nil {
		return nil, err
	}
	return decodeInvestment(out.GetFields()["investment"].GetStructValue())
}

// RemoveInvestment removes an investment; removed is false if it did not exist
func (c *Client) RemoveInvestment(ctx context.Context, sessionID, investmentID uuid.UUID, opts ...grpc.CallOption) (bool, error) {
	out, err := c.invoke(ctx, "RemoveInvestment", map[string]any{
		"session_id":    sessionID.String(),
		"investment_id": investmentID.String(),
	}, opts...)
	if err != nil {
		return false, err
	}
	return out.GetFields()["removed"].GetBoolValue(), nil
}

// ListInvestments returns the session's investments in ledger order
func (c *Client) ListInvestments(ctx context.Context, sessionID uuid.UUID, opts ...grpc.CallOption) ([]InvestmentView, error) {
	out, err := c.invoke(ctx, "ListInvestments", map[string]any{"session_id": sessionID.String()}, opts...)
	if err != nil {
		return nil, err
	}
	return decodeInvestments(out.GetFields()["investments"].GetListValue())
}

// GetSummary returns the aggregates and items of a session
func (c *Client) GetSummary(ctx context.Context, sessionID uuid.UUID, opts ...grpc.CallOption) (*SummaryView, error) {
	out, err := c.invoke(ctx, "GetSummary", map[string]any{"session_id": sessionID.String()}, opts...)
	if err != nil {
		return nil, err
	}

	agg := out.GetFields()["aggregates"].GetStructValue()
	aggregates := domain.Aggregates{Count: int(agg.GetFields()["count"].GetNumberValue())}
	for key, dst := range map[string]*decimal.Decimal{
		"total_capital":       &aggregates.TotalCapital,
		"total_profit":        &aggregates.TotalProfit,
		"overall_profit_rate": &aggregates.OverallProfitRate,
		"total_value":         &aggregates.TotalValue,
	} {
		if *dst, err = decimal.NewFromString(stringField(agg, key)); err != nil {
			return nil, fmt.Errorf("invalid %s in response: %w", key, err)
		}
	}

	items, err := decodeInvestments(out.GetFields()["items"].GetListValue())
	if err != nil {
		return nil, err
	}
	return &SummaryView{Aggregates: aggregates, Items: items}, nil
}

// GetCategoryBreakdown returns per-category totals in classification order
func (c *Client) GetCategoryBreakdown(ctx context.Context, sessionID uuid.UUID, opts ...grpc.CallOption) ([]CategoryTotalView, error) {
	out, err := c.invoke(ctx, "GetCategoryBreakdown", map[string]any{"session_id": sessionID.String()}, opts...)
	if err != nil {
		return nil, err
	}

	values := out.GetFields()["categories"].GetListValue().GetValues()
	totals := make([]CategoryTotalView, 0, len(values))
	for _, v := range values {
		s := v.GetStructValue()
		total := CategoryTotalView{
			Category: domain.Category(stringField(s, "category")),
			Count:    int(s.GetFields()["count"].GetNumberValue()),
		}
		for key, dst := range map[string]*decimal.Decimal{
			"capital":     &total.Capital,
			"profit":      &total.Profit,
			"total_value": &total.TotalValue,
		} {
			if *dst, err = decimal.NewFromString(stringField(s, key)); err != nil {
				return nil, fmt.Errorf("invalid %s in response: %w", key, err)
			}
		}
		totals = append(totals, total)
	}
	return totals, nil
}

// Classify returns the category of an investment name
func (c *Client) Classify(ctx context.Context, name string, opts ...grpc.CallOption) (domain.Category, error) {
	out, err := c.invoke(ctx, "Classify", map[string]any{"name": name}, opts...)
	if err != nil {
		return "", err
	}
	return domain.Category(stringField(out, "category")), nil
}

// PreviewCapital returns the capital a submission would store
func (c *Client) PreviewCapital(ctx context.Context, profitRate, amount, mode string, opts ...grpc.CallOption) (decimal.Decimal, error) {
	out, err := c.invoke(ctx, "PreviewCapital", map[string]any{
		"profit_rate": profitRate,
		"amount":      amount,
		"mode":        mode,
	}, opts...)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(stringField(out, "capital"))
}

// RejectionReasonFromError extracts the rejection reason carried by an InvalidArgument status
func RejectionReasonFromError(err error) (domain.RejectionReason, bool) {
	st, ok := status.FromError(err)
	if !ok {
		return "", false
	}
	for _, detail := range st.Details() {
		if info, ok := detail.(*errdetails.ErrorInfo); ok && info.GetDomain() == ErrorDomain {
			return domain.RejectionReason(info.GetMetadata()["reason"]), true
		}
	}
	return "", false
}

func decodeInvestments(list *structpb.ListValue) ([]InvestmentView, error) {
	out := make([]InvestmentView, 0, len(list.GetValues()))
	for _, v := range list.GetValues() {
		inv, err := decodeInvestment(v.GetStructValue())
		if err != nil {
			return nil, err
		}
		out = append(out, *inv)
	}
	return out, nil
}

func decodeInvestment(s *structpb.Struct) (*InvestmentView, error) {
	id, err := uuid.Parse(stringField(s, "id"))
	if err != nil {
		return nil, fmt.Errorf("invalid investment id in response: %w", err)
	}

	view := &InvestmentView{
		ID:       id,
		Name:     stringField(s, "name"),
		Category: domain.Category(stringField(s, "category")),
	}
	for key, dst := range map[string]*decimal.Decimal{
		"capital":     &view.Capital,
		"profit_rate": &view.ProfitRate,
		"profit":      &view.Profit,
		"total_value": &view.TotalValue,
	} {
		if *dst, err = decimal.NewFromString(stringField(s, key)); err != nil {
			return nil, fmt.Errorf("invalid %s in response: %w", key, err)
		}
	}
	return view, nil
}
