// Package codec converts between the literal syntax of scene file values
// and [ir.Value].
//
// Values of create commands carry a declared type (types.float,
// types.hset, ...) which selects a decoding rule, see [Decode].  Values of
// set commands are bare literals whose kind is inferred from their shape,
// see [Infer].  [Encode] is the inverse of [Infer] and [EncodeDeclared] the
// inverse of [Decode].
package codec
