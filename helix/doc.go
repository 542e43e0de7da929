// Package helix is a typed client for the Twitch Helix REST API.
//
// Each endpoint is a request type that knows its method, path, required scopes and
// query parameters, and that is bound at compile time to the type it decodes responses
// into:
//
//	c, _ := helix.NewClient(helix.Options{})
//	res, err := helix.Send(ctx, c, helix.NewGetUsersByLoginRequest("twitchdev"), creds)
//	// res.Data is a []helix.User
//
// Endpoints that return paginated results implement Pageable, and can be iterated with a
// Pager or flattened with Collect. No request is ever retried.
package helix
