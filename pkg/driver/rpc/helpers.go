package rpc

import (
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

func protoreflectInt32(v int32) protoreflect.Value {
	return protoreflect.ValueOfInt32(v)
}

func protoreflectString(v string) protoreflect.Value {
	return protoreflect.ValueOfString(v)
}

// stringListField reads a repeated-string field off msg into a plain
// []string, for handing to Driver.Compile / rendering diagnostics.
func stringListField(msg *dynamicpb.Message, md protoreflect.MessageDescriptor, field string) []string {
	fd := md.Fields().ByName(protoreflect.Name(field))
	if fd == nil {
		return nil
	}
	list := msg.Get(fd).List()
	out := make([]string, list.Len())
	for i := 0; i < list.Len(); i++ {
		out[i] = list.Get(i).String()
	}
	return out
}
