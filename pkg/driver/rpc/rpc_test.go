package rpc

import (
	"testing"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/funvibe/javac-core/internal/ctx"
)

func TestBuildSchemaFields(t *testing.T) {
	s, err := buildSchema()
	if err != nil {
		t.Fatalf("buildSchema: %v", err)
	}
	if s.request.Fields().ByName(fieldArgs) == nil {
		t.Fatalf("expected CompileRequest.args field")
	}
	if s.response.Fields().ByName(protoreflect.Name(fieldExitCode)) == nil {
		t.Fatalf("expected CompileResponse.exit_code field")
	}
	if s.response.Fields().ByName(protoreflect.Name(fieldDiagnostics)) == nil {
		t.Fatalf("expected CompileResponse.diagnostics field")
	}
}

func TestServerHandleRunsCompileFn(t *testing.T) {
	var seen []string
	srv, err := NewServer(func(c *ctx.Context, sources []string) error {
		seen = sources
		return nil
	})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}

	req := dynamicpb.NewMessage(srv.schema.request)
	fd := srv.schema.request.Fields().ByName(fieldArgs)
	list := req.Mutable(fd).List()
	list.Append(protoreflect.ValueOfString("Main.java"))

	resp, err := srv.handle(req)
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	exitFd := srv.schema.response.Fields().ByName(protoreflect.Name(fieldExitCode))
	if resp.Get(exitFd).Int() != 0 {
		t.Fatalf("expected exit code OK, got %d", resp.Get(exitFd).Int())
	}
	if len(seen) != 1 || seen[0] != "Main.java" {
		t.Fatalf("expected the compile fn to see the request's source args, got %v", seen)
	}
}
