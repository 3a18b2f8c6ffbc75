package rpc

import (
	"bytes"
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/funvibe/javac-core/internal/ctx"
	"github.com/funvibe/javac-core/pkg/driver"
)

// CompileFn is the semantic-analysis pipeline a Server drives, the same
// shape Driver.SetCompileFn accepts.
type CompileFn func(c *ctx.Context, sources []string) error

// Server implements the dynamically-described CompileService over gRPC.
type Server struct {
	schema    *schema
	compileFn CompileFn
}

// NewServer builds the wire schema and binds compileFn as the pipeline
// every incoming Compile call drives.
func NewServer(compileFn CompileFn) (*Server, error) {
	s, err := buildSchema()
	if err != nil {
		return nil, err
	}
	return &Server{schema: s, compileFn: compileFn}, nil
}

// serviceDescTemplate describes the one-method CompileService for
// grpc.Server.RegisterService, built by hand since there is no generated
// stub (see descriptor.go).
var serviceDescTemplate = grpc.ServiceDesc{
	ServiceName: "javaccore.CompileService",
	Metadata:    "javaccore/compile.proto",
}

// Register attaches s to gs under the CompileService name.
func (s *Server) Register(gs *grpc.Server) {
	desc := serviceDescTemplate
	desc.HandlerType = (*interface{})(nil)
	desc.Methods = []grpc.MethodDesc{
		{
			MethodName: "Compile",
			Handler:    s.compileHandler,
		},
	}
	gs.RegisterService(&desc, s)
}

func (s *Server) compileHandler(
	srv interface{},
	callCtx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	req := dynamicpb.NewMessage(s.schema.request)
	if err := dec(req); err != nil {
		return nil, err
	}

	handle := func(c context.Context, reqIface interface{}) (interface{}, error) {
		return s.handle(reqIface.(*dynamicpb.Message))
	}
	if interceptor == nil {
		return handle(callCtx, req)
	}
	info := &grpc.UnaryServerInfo{Server: s, FullMethod: "/javaccore.CompileService/Compile"}
	return interceptor(callCtx, req, info, handle)
}

func (s *Server) handle(req *dynamicpb.Message) (*dynamicpb.Message, error) {
	args := stringListField(req, s.schema.request, fieldArgs)

	var out bytes.Buffer
	d := driver.New(&out)
	d.SetCompileFn(s.compileFn)
	code := d.Compile(args)

	resp := dynamicpb.NewMessage(s.schema.response)
	fd := s.schema.response.Fields().ByName(protoreflect.Name(fieldExitCode))
	resp.Set(fd, protoreflectInt32(int32(code)))

	diagLines := splitNonEmptyLines(out.String())
	diagsFd := s.schema.response.Fields().ByName(protoreflect.Name(fieldDiagnostics))
	list := resp.Mutable(diagsFd).List()
	for _, line := range diagLines {
		list.Append(protoreflectString(line))
	}
	return resp, nil
}

func splitNonEmptyLines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
