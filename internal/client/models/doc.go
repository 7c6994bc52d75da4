// Package models defines the wire types exchanged with the MakanScan backend.
//
// Field names follow the backend's JSON (snake_case). Optional fields are
// pointers so "absent" and "zero" stay distinguishable; free-form payloads
// produced by the backend's AI and third-party integrations are kept as
// json.RawMessage and passed through untouched.
package models
