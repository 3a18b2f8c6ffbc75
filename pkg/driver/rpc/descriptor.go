// Package rpc exposes Driver.Compile as an out-of-process gRPC service,
// for a worker-pool deployment where the driver runs in a long-lived
// process and clients submit compile jobs over the network. Kept
// entirely outside the semantic core (internal/...): none of
// internal/types, internal/symtab, internal/attr, etc. import this
// package or its dependencies.
//
// The wire schema is built at runtime with jhump/protoreflect's message
// builder rather than a checked-in .proto + protoc step, since the
// schema is small and stable enough not to warrant a generated-code
// pipeline.
package rpc

import (
	"github.com/jhump/protoreflect/desc/builder"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
)

// Field names on the dynamically-built CompileRequest/CompileResponse
// messages.
const (
	fieldArgs        = "args"
	fieldExitCode    = "exit_code"
	fieldDiagnostics = "diagnostics"
)

// schema holds the two message descriptors the service exchanges.
type schema struct {
	request  protoreflect.MessageDescriptor
	response protoreflect.MessageDescriptor
}

// buildSchema constructs the CompileRequest/CompileResponse descriptors.
//
//	message CompileRequest  { repeated string args = 1; }
//	message CompileResponse { int32 exit_code = 1; repeated string diagnostics = 2; }
func buildSchema() (*schema, error) {
	reqMsg, err := builder.NewMessage("CompileRequest").
		AddField(builder.NewField(fieldArgs, builder.FieldTypeString()).SetRepeated()).
		Build()
	if err != nil {
		return nil, err
	}

	respMsg, err := builder.NewMessage("CompileResponse").
		AddField(builder.NewField(fieldExitCode, builder.FieldTypeInt32())).
		AddField(builder.NewField(fieldDiagnostics, builder.FieldTypeString()).SetRepeated()).
		Build()
	if err != nil {
		return nil, err
	}

	file, err := builder.NewFile("javaccore/compile.proto").
		AddMessage(reqMsg).
		AddMessage(respMsg).
		SetPackageName("javaccore").
		Build()
	if err != nil {
		return nil, err
	}

	fd, err := protodesc.NewFile(file.AsFileDescriptorProto(), protoregistry.GlobalFiles)
	if err != nil {
		return nil, err
	}

	return &schema{
		request:  fd.Messages().ByName("CompileRequest"),
		response: fd.Messages().ByName("CompileResponse"),
	}, nil
}
