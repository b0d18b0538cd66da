package fx

import "go.uber.org/fx"

// AppModule wires every module of the API.
var AppModule = fx.Options(
	ConfigModule,
	InfrastructureModule,
	DomainModule,
	MiddlewareModule,
	RoutesModule,
	ServerModule,
)
