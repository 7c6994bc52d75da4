// Package api is the HTTP client for the MakanScan backend.
//
// # Overview
//
// A single Client is configured once with the backend base URL, a fixed
// request timeout and the device Storage. Every call goes through one
// pipeline:
//
//  1. the request is built (JSON body, query parameters, context);
//  2. request interceptors run in order (by default: RequestID, then
//     BearerToken, which attaches the stored session token if there is one);
//  3. the request is sent;
//  4. response interceptors run in order and may observe or replace the
//     error (by default: ClearSessionOnUnauthorized, which wipes the stored
//     session on a 401 and passes the error through unchanged);
//  5. the {success, message, data, meta} envelope is unwrapped.
//
// Endpoint methods are thin: they never catch, retry, cache or coalesce.
//
// # Errors
//
// Callers match failures with errors.Is against ErrTransport, ErrTimeout,
// ErrUnauthorized, ErrRequestFailed and ErrDecode, or extract details with
// errors.As into *TransportError, *APIError or *DecodeError.
//
// A 401 from Login means the credentials were rejected; on any other
// endpoint it means the stored token is no longer accepted. In both cases
// the stored session has already been cleared by the time the error is
// returned. In-memory session state is not touched here.
package api
