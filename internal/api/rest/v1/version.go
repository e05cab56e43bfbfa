package v1

// BasePath is the path prefix shared by all v1 API routes.
const BasePath = "/api"
