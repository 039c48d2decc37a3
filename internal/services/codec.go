package services

import (
	"context"
	"encoding/json"

	"github.com/vwency/policy-chat-gateway/internal/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const jsonCodecName = "json"

// jsonCodec lets the directory service exchange plain Go structs over gRPC.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func (jsonCodec) Name() string { return jsonCodecName }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

const (
	userServiceName       = "directory.UserService"
	getUserMethod         = "/" + userServiceName + "/GetUser"
	findUserByEmailMethod = "/" + userServiceName + "/FindUserByEmail"
)

type GetUserRequest struct {
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
}

type GetUserResponse struct {
	User *models.UserRecord `json:"user"`
}

// UserDirectoryServer is the server API of the user directory.
type UserDirectoryServer interface {
	GetUser(ctx context.Context, req *GetUserRequest) (*GetUserResponse, error)
	FindUserByEmail(ctx context.Context, req *GetUserRequest) (*GetUserResponse, error)
}

func RegisterUserDirectoryServer(s grpc.ServiceRegistrar, srv UserDirectoryServer) {
	s.RegisterService(&userDirectoryServiceDesc, srv)
}

var userDirectoryServiceDesc = grpc.ServiceDesc{
	ServiceName: userServiceName,
	HandlerType: (*UserDirectoryServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetUser",
			Handler:    getUserHandler,
		},
		{
			MethodName: "FindUserByEmail",
			Handler:    findUserByEmailHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "directory",
}

func getUserHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserDirectoryServer).GetUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: getUserMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserDirectoryServer).GetUser(ctx, req.(*GetUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func findUserByEmailHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserDirectoryServer).FindUserByEmail(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: findUserByEmailMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserDirectoryServer).FindUserByEmail(ctx, req.(*GetUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}
