package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/vwency/policy-chat-gateway/internal/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type UserServiceClient struct {
	conn               grpc.ClientConnInterface
	degradationTimeout time.Duration
}

func NewUserServiceClient(conn grpc.ClientConnInterface, degradationTimeout time.Duration) *UserServiceClient {
	return &UserServiceClient{
		conn:               conn,
		degradationTimeout: degradationTimeout,
	}
}

func (s *UserServiceClient) GetUser(ctx context.Context, userID string) (*models.UserRecord, error) {
	return s.invoke(ctx, getUserMethod, &GetUserRequest{UserID: userID})
}

func (s *UserServiceClient) FindUserByEmail(ctx context.Context, email string) (*models.UserRecord, error) {
	return s.invoke(ctx, findUserByEmailMethod, &GetUserRequest{Email: email})
}

func (s *UserServiceClient) invoke(ctx context.Context, method string, req *GetUserRequest) (*models.UserRecord, error) {
	if s.degradationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.degradationTimeout)
		defer cancel()
	}

	resp := new(GetUserResponse)
	err := s.conn.Invoke(ctx, method, req, resp, grpc.CallContentSubtype(jsonCodecName))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || status.Code(err) == codes.DeadlineExceeded {
			return nil, status.Error(codes.Internal, "User service timeout")
		}
		return nil, err
	}
	if resp.User == nil {
		return nil, status.Error(codes.NotFound, "user not found")
	}

	return resp.User, nil
}

type UserServiceServer struct {
	byID    map[string]models.UserRecord
	byEmail map[string]models.UserRecord
}

func NewUserServiceServer(records []models.UserRecord) *UserServiceServer {
	s := &UserServiceServer{
		byID:    make(map[string]models.UserRecord, len(records)),
		byEmail: make(map[string]models.UserRecord, len(records)),
	}
	for _, r := range records {
		if id := r.Identifier(); id != "" {
			s.byID[id] = r
		}
		if r.Email != "" {
			s.byEmail[strings.ToLower(r.Email)] = r
		}
	}
	return s
}

func (s *UserServiceServer) GetUser(ctx context.Context, req *GetUserRequest) (*GetUserResponse, error) {
	if req.UserID == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	r, ok := s.byID[req.UserID]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "user %s not found", req.UserID)
	}
	return &GetUserResponse{User: &r}, nil
}

func (s *UserServiceServer) FindUserByEmail(ctx context.Context, req *GetUserRequest) (*GetUserResponse, error) {
	if req.Email == "" {
		return nil, status.Error(codes.InvalidArgument, "email is required")
	}
	r, ok := s.byEmail[strings.ToLower(req.Email)]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "user %s not found", req.Email)
	}
	return &GetUserResponse{User: &r}, nil
}

// SeedUsers is the sample employee roster served by the standalone directory.
var SeedUsers = []models.UserRecord{
	{UserID: "1001", Email: "1001@example.com", UserRole: "Admin", Department: "IT", EmployeeStatus: "Active", Region: "US"},
	{UserID: "1002", Email: "1002@example.com", UserRole: "User", Department: "HR", EmployeeStatus: "Active", Region: "EU"},
	{UserID: "1003", Email: "1003@example.com", UserRole: "User", Department: "Finance", EmployeeStatus: "Active", Region: "APAC"},
	{UserID: "1004", Email: "1004@example.com", UserRole: "User", Department: "Marketing", EmployeeStatus: "Contractor", Region: "US"},
	{UserID: "1005", Email: "1005@example.com", UserRole: "Admin", Department: "IT", EmployeeStatus: "Active", Region: "EU"},
	{UserID: "2131", Email: "2131@example.com", UserRole: "User", Department: "Sales", EmployeeStatus: "Active", Region: "US"},
}
