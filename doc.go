// The [remotemodel] package presents remote HTTP API resources as mutable,
// Active-Record-style entities in the Go way.
//
// # Types and Models
//
// A [Type] is the compiled handle for one remote resource collection. It is
// built from an [attributes.Definition] (casts, date fields, visibility
// lists, mutator tables) and a [Config] carrying the injected transport:
//
//	users, err := remotemodel.NewType(attributes.Definition{
//		Name:  "User",
//		Casts: map[string]string{"age": "int", "meta": "json"},
//		Dates: []string{"createdAt"},
//	}, remotemodel.Config{Client: client.NewHTTP(baseURL, token, nil)})
//
// A [Model] is one entity instance. Attribute reads apply registered getters,
// declared casts and date normalization; serialization additionally applies
// the hidden/visible projection. Raw storage is never cast.
//
// # Lifecycle
//
// [Type.Find], [Type.FindOrFail], [Type.All], [Type.Create], [Model.Save],
// [Model.Update] and [Model.Delete] dispatch through the [client.Transport]
// collaborator. A transport that reports no record yields a soft nil from
// Find and boolean failure from the write verbs; transport failures always
// surface as errors. After every call the transport's captured error payload
// is available from [Model.LastError].
//
// # Transports
//
// [client.NewHTTP] speaks a conventional REST dialect. Any implementation of
// [client.Transport] can be injected instead.
package remotemodel
