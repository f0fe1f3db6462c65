package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/hireflow/scout/pkg/config"
	pb "github.com/hireflow/scout/proto"
)

// GRPC calls the external responder sidecar over gRPC.
type GRPC struct {
	conn   *grpc.ClientConn
	client pb.ResponderClient
	cfg    *config.LLMConfig
}

// NewGRPC connects to the responder sidecar at cfg.Address. The connection
// is lazy, so this does not fail on an unreachable sidecar.
func NewGRPC(cfg *config.LLMConfig) (*GRPC, error) {
	if cfg == nil || cfg.Address == "" {
		return nil, errors.New("grpc responder: address is required")
	}
	conn, err := grpc.NewClient(cfg.Address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to responder at %s: %w", cfg.Address, err)
	}
	return &GRPC{conn: conn, client: pb.NewResponderClient(conn), cfg: cfg}, nil
}

// GenerateCandidateReply implements Responder.
func (r *GRPC) GenerateCandidateReply(ctx context.Context, req Request) (string, error) {
	pbReq := &pb.GenerateRequest{
		SessionId: req.SessionID,
		Messages:  toProtoMessages(req),
		Model:     r.cfg.Model,
	}
	if r.cfg.Temperature > 0 {
		temp := float32(r.cfg.Temperature)
		pbReq.Temperature = &temp
	}
	if r.cfg.MaxTokens > 0 {
		maxTokens := int32(r.cfg.MaxTokens)
		pbReq.MaxTokens = &maxTokens
	}

	callCtx, cancel := withTimeout(ctx, r.cfg.Timeout)
	defer cancel()
	resp, err := r.client.Generate(callCtx, pbReq)
	if err != nil {
		observe(config.LLMProviderGRPC, "", err)
		return "", fmt.Errorf("responder generate failed: %w", err)
	}
	content := strings.TrimSpace(resp.GetContent())
	observe(config.LLMProviderGRPC, content, nil)
	return content, nil
}

// Close releases the gRPC connection.
func (r *GRPC) Close() error {
	return r.conn.Close()
}

func toProtoMessages(req Request) []*pb.ChatMessage {
	out := make([]*pb.ChatMessage, 0, len(req.Messages)+1)
	if req.System != "" {
		out = append(out, &pb.ChatMessage{Role: pb.ChatMessage_ROLE_SYSTEM, Content: req.System})
	}
	for _, m := range req.Messages {
		out = append(out, &pb.ChatMessage{Role: toProtoRole(m.Role), Content: m.Content})
	}
	return out
}

func toProtoRole(role string) pb.ChatMessage_Role {
	switch role {
	case RoleSystem:
		return pb.ChatMessage_ROLE_SYSTEM
	case RoleAssistant:
		return pb.ChatMessage_ROLE_ASSISTANT
	default:
		return pb.ChatMessage_ROLE_USER
	}
}
