// Package handshake defines the version-exchange payloads the side
// channel carries between two endpoints, and the verdict logic each
// side runs over them.
//
// The channel itself (delivery, retries, reconnection) belongs to the
// host application. The exchange is a single request/response pair: the
// client sends a VersionCheck carrying its wire-format compatibility
// version, the server answers with a VersionAck carrying its own
// version and an accept/reject verdict. Both sides then gate interop on
// their own compatibility check -- acceptance by one side alone is not
// enough.
package handshake
