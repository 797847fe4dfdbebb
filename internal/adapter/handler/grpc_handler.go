package handler

import (
	"context"
	"errors"

	"github.com/lqhuy182/art-registry/internal/adapter/handler/pb"
	"github.com/lqhuy182/art-registry/internal/core/domain"
	"github.com/lqhuy182/art-registry/internal/core/service"
)

type GRPCHandler struct {
	pb.UnimplementedArtistServiceServer
	registry *service.RegistryService
}

func NewGRPCHandler(registry *service.RegistryService) *GRPCHandler {
	return &GRPCHandler{registry: registry}
}

func (h *GRPCHandler) Mint(ctx context.Context, req *pb.MintRequest) (*pb.MintResponse, error) {
	work, err := h.registry.Mint(ctx, domain.ItemID(req.GetContentId()), req.GetDisplayName(), domain.Account(req.GetCaller()))
	if err != nil {
		return &pb.MintResponse{
			Success: false,
			Message: grpcMessage(err),
		}, nil
	}
	return &pb.MintResponse{
		Success: true,
		Message: "artwork minted",
		Owner:   string(work.Owner()),
	}, nil
}

func (h *GRPCHandler) Sell(ctx context.Context, req *pb.SellRequest) (*pb.SellResponse, error) {
	err := h.registry.Sell(ctx, domain.ItemID(req.GetContentId()), domain.Account(req.GetNewOwner()), domain.Account(req.GetCaller()))
	if err != nil {
		return &pb.SellResponse{
			Success: false,
			Message: grpcMessage(err),
		}, nil
	}
	return &pb.SellResponse{
		Success: true,
		Message: "artwork sold",
	}, nil
}

func (h *GRPCHandler) Exists(ctx context.Context, req *pb.ExistsRequest) (*pb.ExistsResponse, error) {
	exists, err := h.registry.Exists(ctx, domain.ItemID(req.GetContentId()), domain.Account(req.GetCaller()))
	if err != nil {
		return &pb.ExistsResponse{
			Success: false,
			Message: grpcMessage(err),
		}, nil
	}
	return &pb.ExistsResponse{
		Success: true,
		Exists:  exists,
	}, nil
}

func (h *GRPCHandler) OwnerOf(ctx context.Context, req *pb.OwnerOfRequest) (*pb.OwnerOfResponse, error) {
	owner, err := h.registry.OwnerOf(ctx, domain.ItemID(req.GetContentId()))
	if err != nil {
		return &pb.OwnerOfResponse{
			Success: false,
			Message: grpcMessage(err),
		}, nil
	}
	return &pb.OwnerOfResponse{
		Success: true,
		Owner:   string(owner),
	}, nil
}

func grpcMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, domain.ErrNotFound):
		return "not found"
	case errors.Is(err, domain.ErrAlreadyExists):
		return "already minted"
	case errors.Is(err, domain.ErrReceiverRejected):
		return "receiver rejected"
	case errors.Is(err, domain.ErrInvalidState):
		return "invalid state"
	}
	return "internal error"
}
