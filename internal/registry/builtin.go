package registry

const (
	languagesDir = "languages"
	manifestsDir = "microservice-manifests"
)

func language(l Language, name string, port int, run string) LanguageTemplate {
	return LanguageTemplate{
		Language:             l,
		LanguageName:         name,
		CodeTemplatePath:     languagesDir + "/" + name,
		ManifestTemplatePath: manifestsDir + "/" + name + ".yaml",
		DefaultPort:          port,
		RunCommand:           run,
	}
}

func component(kind ComponentKind, key, name, typ, advice string, aliases ...string) ComponentTemplate {
	return ComponentTemplate{
		Kind:                 kind,
		Name:                 key,
		ComponentName:        name,
		ComponentType:        typ,
		ManifestTemplatePath: "components/" + string(kind) + "/" + name + ".yaml",
		Advice:               advice,
		Aliases:              aliases,
	}
}

var builtinLanguages = map[Language]LanguageTemplate{
	CSharp:     language(CSharp, "csharp", 5000, "dotnet run"),
	Go:         language(Go, "go", 6000, "go run ."),
	JavaScript: language(JavaScript, "javascript", 3000, "node app.js"),
	Python:     language(Python, "python", 5001, "python app.py"),
	TypeScript: language(TypeScript, "typescript", 3001, "npm start"),
}

var builtinComponents = []ComponentTemplate{
	component(KindState, "Redis", "redis-state", "state.redis",
		"Install Redis with `helm install redis bitnami/redis` or use the instance created by `dapr init`, then set `redisHost` and `redisPassword`."),
	component(KindState, "Azure CosmosDB", "cosmosdb-state", "state.azure.cosmosdb",
		"Create a Cosmos DB account, database and collection, then fill in `url`, `masterKey`, `database` and `collection`.",
		"CosmosDB", "cosmosdb"),
	component(KindState, "Cassandra", "cassandra-state", "state.cassandra",
		"Point `hosts` at your Cassandra cluster and set `username` and `password`."),

	component(KindPubSub, "Redis Streams", "redis-pubsub", "pubsub.redis",
		"Redis Streams needs Redis 5 or later. Set `redisHost` and `redisPassword`."),
	component(KindPubSub, "NATS", "nats-pubsub", "pubsub.jetstream",
		"Run a NATS server with JetStream enabled and set `natsURL`."),
	component(KindPubSub, "RabbitMQ", "rabbitmq-pubsub", "pubsub.rabbitmq",
		"Install RabbitMQ with `helm install rabbitmq bitnami/rabbitmq` and set `connectionString`."),
	component(KindPubSub, "Azure Service Bus", "servicebus-pubsub", "pubsub.azure.servicebus.topics",
		"Create a Service Bus namespace and set `connectionString`.",
		"Service Bus", "ServiceBus"),

	component(KindBindings, "Kafka", "kafka-binding", "bindings.kafka",
		"Set `brokers`, `topics` and `consumerGroup` to match your Kafka cluster."),
	component(KindBindings, "Cron", "cron-binding", "bindings.cron",
		"Adjust `schedule`; Dapr will POST to `/cron-binding` on your services."),
	component(KindBindings, "HTTP", "http-binding", "bindings.http",
		"Set `url` to the endpoint the binding should call."),
	component(KindBindings, "Azure Blob Storage", "blobstorage-binding", "bindings.azure.blobstorage",
		"Create a storage account and container, then set `storageAccount`, `storageAccessKey` and `container`.",
		"Blob Storage"),
}

// DefaultScaffold is the placeholder directory in the built-in template tree.
var DefaultScaffold = Scaffold{Source: "scaffold", Placeholder: "tmp.txt"}

// Default returns the built-in registry. It covers every value of
// AllLanguages; the registry tests enforce this.
func Default() *Registry {
	langs := make([]LanguageTemplate, 0, len(builtinLanguages))
	for _, l := range AllLanguages() {
		langs = append(langs, builtinLanguages[l])
	}
	r, err := New(langs, builtinComponents, DefaultScaffold)
	if err != nil {
		panic("registry: invalid built-in registry: " + err.Error())
	}
	return r
}
