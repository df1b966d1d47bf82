// Package token provides display id generation for unityvault tokens.
//
// Display ids are short, URL-safe labels cut from a base64 RawURL encoding
// of random bytes. They identify a token on screen and in the vault; they
// are not a security boundary and collisions are not defended against.
//
// ID Format:
//
//   - 6 random bytes, base64 RawURL encoded (no padding)
//   - Total: 8 characters
package token
