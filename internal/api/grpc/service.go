package grpc

import (
	"context"
	"time"

	"github.com/m-zajac/agentsmd/internal/app"
	grpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	serviceName = "agentsmd.Contributors"
	listMethod  = "/" + serviceName + "/List"
)

// AppService can return contributors data.
//go:generate mockgen -destination mock/service.go -package mock github.com/m-zajac/agentsmd/internal/api/grpc AppService
type AppService interface {
	Load(ctx context.Context) (app.ContributorsPage, error)
}

// ContributorsServer is the server API for agentsmd.Contributors service.
type ContributorsServer interface {
	List(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

// RegisterContributorsServer registers srv in grpc server.
func RegisterContributorsServer(s grpc.ServiceRegistrar, srv ContributorsServer) {
	s.RegisterService(&serviceDesc, srv)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*ContributorsServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "List",
			Handler:    listHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "agentsmd/contributors",
}

func listHandler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContributorsServer).List(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: listMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContributorsServer).List(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// Service implements ContributorsServer, acting as a direct proxy to AppService.
type Service struct {
	appService AppService
}

var _ ContributorsServer = &Service{}

// NewService returns new Service instance
func NewService(appService AppService) *Service {
	return &Service{
		appService: appService,
	}
}

// List calls service and returns contributors data as a struct.
func (s *Service) List(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	page, err := s.appService.Load(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Unavailable, "loading contributors: %v", err)
	}

	reply, err := newListReply(page)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encoding reply: %v", err)
	}

	return reply, nil
}

func newListReply(page app.ContributorsPage) (*structpb.Struct, error) {
	repos := make(map[string]interface{}, len(page.Repositories))
	for name, summary := range page.Repositories {
		avatars := make([]interface{}, 0, len(summary.Avatars))
		for _, a := range summary.Avatars {
			avatars = append(avatars, a)
		}
		repos[name] = map[string]interface{}{
			"avatars":  avatars,
			"total":    summary.Total,
			"degraded": page.Degraded[name],
		}
	}

	return structpb.NewStruct(map[string]interface{}{
		"repositories":      repos,
		"revalidateSeconds": int(page.Revalidate / time.Second),
		"fetchedAt":         page.FetchedAt.UTC().Format(time.RFC3339),
		"fromCache":         page.FromCache,
	})
}
