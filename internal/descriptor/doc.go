// Package descriptor defines the declarative input of a command registry.
//
// A Descriptor is produced by whatever declarative source a host uses (the
// builders in this package, a config file, generated code) and handed to
// dispatchers.Registry.Register. Nothing here inspects host types: a
// parameter's target type is carried explicitly as a TypeTag.
//
// A group's own default action is declared as a child named IndexName:
//
//	descriptor.Group(descriptor.GroupSpec{
//		Name: "user",
//		Children: []*descriptor.Descriptor{
//			descriptor.Index(descriptor.IndexSpec{Handler: list}),
//			descriptor.Command(descriptor.CommandSpec{Name: "add", Handler: add}),
//		},
//	})
package descriptor
