// Package encoding groups the wire codecs of the halap SDK. The sse
// subpackage holds the streaming decoder; non-streaming endpoints exchange
// plain JSON and need no codec beyond encoding/json.
package encoding
