// Package fetch is the HTTP transport behind the boundary's Fetch operation.
//
// The client composes resty over a retryablehttp transport for retries with
// exponential backoff, gates requests through a rate limiter and a
// consecutive-failure circuit breaker, caps response bodies, and sniffs the
// content type when the server sends none. Failures carry a Kind so the
// boundary can map them onto its shared error enumeration.
package fetch
