package graphql

import (
	"github.com/graphql-go/graphql"
)

// SDL is the schema document served to API consumers. It must stay in step
// with the executable schema built by NewSchema.
const SDL = `schema {
  query: Query
  mutation: Mutation
}

type Query {
  getNewPackagingRequestIds(nextToken: String): NewPackagingRequestIds
  getPackagingRequest(input: PackagingInput!): PackagingRequest
  getNewDeliveries(nextToken: String): NewDeliveries
  getDelivery(input: DeliveryInput!): Delivery
}

type Mutation {
  startPackaging(input: PackagingInput!): Message
  completePackaging(input: PackagingInput!): Message
  startDelivery(input: DeliveryInput!): Message
  failDelivery(input: DeliveryInput!): Message
  completeDelivery(input: DeliveryInput!): Message
}

input PackagingInput {
  orderId: ID!
}

input DeliveryInput {
  orderId: ID!
}

type NewPackagingRequestIds {
  packagingRequestIds: [ID]
  nextToken: String
}

type PackagingRequest {
  orderId: ID
  status: String
  products: [Product]
}

type Product {
  productId: ID
  quantity: Int
}

type NewDeliveries {
  deliveries: [Delivery]
  nextToken: String
}

type Delivery {
  orderId: ID
  address: Address
}

type Address {
  name: String
  streetAddress: String
  city: String
  country: String
}

type Message {
  success: Boolean
}
`

// NewSchema builds the executable fulfillment schema around the given
// resolver set.
func NewSchema(resolvers *Resolvers) (graphql.Schema, error) {
	addressType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Address",
		Fields: graphql.Fields{
			"name":          &graphql.Field{Type: graphql.String},
			"streetAddress": &graphql.Field{Type: graphql.String},
			"city":          &graphql.Field{Type: graphql.String},
			"country":       &graphql.Field{Type: graphql.String},
		},
	})

	deliveryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Delivery",
		Fields: graphql.Fields{
			"orderId": &graphql.Field{Type: graphql.ID},
			"address": &graphql.Field{Type: addressType},
		},
	})

	newDeliveriesType := graphql.NewObject(graphql.ObjectConfig{
		Name: "NewDeliveries",
		Fields: graphql.Fields{
			"deliveries": &graphql.Field{Type: graphql.NewList(deliveryType)},
			"nextToken":  &graphql.Field{Type: graphql.String},
		},
	})

	productType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"productId": &graphql.Field{Type: graphql.ID},
			"quantity":  &graphql.Field{Type: graphql.Int},
		},
	})

	packagingRequestType := graphql.NewObject(graphql.ObjectConfig{
		Name: "PackagingRequest",
		Fields: graphql.Fields{
			"orderId":  &graphql.Field{Type: graphql.ID},
			"status":   &graphql.Field{Type: graphql.String},
			"products": &graphql.Field{Type: graphql.NewList(productType)},
		},
	})

	newPackagingRequestIdsType := graphql.NewObject(graphql.ObjectConfig{
		Name: "NewPackagingRequestIds",
		Fields: graphql.Fields{
			"packagingRequestIds": &graphql.Field{Type: graphql.NewList(graphql.ID)},
			"nextToken":           &graphql.Field{Type: graphql.String},
		},
	})

	messageType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Message",
		Fields: graphql.Fields{
			"success": &graphql.Field{Type: graphql.Boolean},
		},
	})

	packagingInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "PackagingInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"orderId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
	})

	deliveryInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "DeliveryInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"orderId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
	})

	nextTokenArg := graphql.FieldConfigArgument{
		"nextToken": &graphql.ArgumentConfig{Type: graphql.String},
	}
	packagingInputArg := graphql.FieldConfigArgument{
		"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(packagingInput)},
	}
	deliveryInputArg := graphql.FieldConfigArgument{
		"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(deliveryInput)},
	}

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"getNewPackagingRequestIds": &graphql.Field{
				Type:    newPackagingRequestIdsType,
				Args:    nextTokenArg,
				Resolve: resolvers.getNewPackagingRequestIds,
			},
			"getPackagingRequest": &graphql.Field{
				Type:    packagingRequestType,
				Args:    packagingInputArg,
				Resolve: resolvers.getPackagingRequest,
			},
			"getNewDeliveries": &graphql.Field{
				Type:    newDeliveriesType,
				Args:    nextTokenArg,
				Resolve: resolvers.getNewDeliveries,
			},
			"getDelivery": &graphql.Field{
				Type:    deliveryType,
				Args:    deliveryInputArg,
				Resolve: resolvers.getDelivery,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"startPackaging": &graphql.Field{
				Type:    messageType,
				Args:    packagingInputArg,
				Resolve: resolvers.startPackaging,
			},
			"completePackaging": &graphql.Field{
				Type:    messageType,
				Args:    packagingInputArg,
				Resolve: resolvers.completePackaging,
			},
			"startDelivery": &graphql.Field{
				Type:    messageType,
				Args:    deliveryInputArg,
				Resolve: resolvers.startDelivery,
			},
			"failDelivery": &graphql.Field{
				Type:    messageType,
				Args:    deliveryInputArg,
				Resolve: resolvers.failDelivery,
			},
			"completeDelivery": &graphql.Field{
				Type:    messageType,
				Args:    deliveryInputArg,
				Resolve: resolvers.completeDelivery,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
