// Package graphql is the inbound API adapter. It executes the fulfillment
// schema over a single HTTP endpoint, translating GraphQL operations into
// command and query handler calls.
package graphql

import (
	"fmt"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/graphql-go/graphql"
)

// listingPageSize is the fixed page length of the two NEW listings. The API
// exposes only the continuation token; page length stays a server concern.
const listingPageSize = 20

// Resolvers bridges the GraphQL fields to the application use cases.
// It coordinates between field resolution and command/query handlers.
type Resolvers struct {
	// Command handlers
	startPackagingHandler    commands.StartPackagingCommandHandler
	completePackagingHandler commands.CompletePackagingCommandHandler
	startDeliveryHandler     commands.StartDeliveryCommandHandler
	failDeliveryHandler      commands.FailDeliveryCommandHandler
	completeDeliveryHandler  commands.CompleteDeliveryCommandHandler

	// Query handlers
	getNewPackagingRequestIdsHandler queries.GetNewPackagingRequestIdsQueryHandler
	getPackagingRequestHandler       queries.GetPackagingRequestQueryHandler
	getNewDeliveriesHandler          queries.GetNewDeliveriesQueryHandler
	getDeliveryHandler               queries.GetDeliveryQueryHandler
}

// NewResolvers creates the resolver set with the required command and query handlers.
func NewResolvers(
	startPackagingHandler commands.StartPackagingCommandHandler,
	completePackagingHandler commands.CompletePackagingCommandHandler,
	startDeliveryHandler commands.StartDeliveryCommandHandler,
	failDeliveryHandler commands.FailDeliveryCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	getNewPackagingRequestIdsHandler queries.GetNewPackagingRequestIdsQueryHandler,
	getPackagingRequestHandler queries.GetPackagingRequestQueryHandler,
	getNewDeliveriesHandler queries.GetNewDeliveriesQueryHandler,
	getDeliveryHandler queries.GetDeliveryQueryHandler,
) *Resolvers {
	return &Resolvers{
		startPackagingHandler:            startPackagingHandler,
		completePackagingHandler:         completePackagingHandler,
		startDeliveryHandler:             startDeliveryHandler,
		failDeliveryHandler:              failDeliveryHandler,
		completeDeliveryHandler:          completeDeliveryHandler,
		getNewPackagingRequestIdsHandler: getNewPackagingRequestIdsHandler,
		getPackagingRequestHandler:       getPackagingRequestHandler,
		getNewDeliveriesHandler:          getNewDeliveriesHandler,
		getDeliveryHandler:               getDeliveryHandler,
	}
}

// orderIDFromInput extracts and parses the orderId of an input object argument.
func orderIDFromInput(p graphql.ResolveParams) (kernel.OrderID, error) {
	input, ok := p.Args["input"].(map[string]any)
	if !ok {
		return kernel.OrderID{}, fmt.Errorf("input object is required")
	}

	raw, ok := input["orderId"].(string)
	if !ok {
		return kernel.OrderID{}, fmt.Errorf("orderId is required")
	}

	return kernel.OrderIDFromString(raw)
}

// pageTokenArg parses the optional nextToken argument of a listing field.
func pageTokenArg(p graphql.ResolveParams) (kernel.PageToken, error) {
	raw, _ := p.Args["nextToken"].(string)
	return kernel.PageTokenFromString(raw)
}

// wireToken renders a page token for the response: the zero token becomes
// null so callers can stop paging on its absence.
func wireToken(token kernel.PageToken) any {
	if token.IsZero() {
		return nil
	}
	return token.String()
}

func (r *Resolvers) getNewPackagingRequestIds(p graphql.ResolveParams) (any, error) {
	token, err := pageTokenArg(p)
	if err != nil {
		return nil, err
	}

	query, err := queries.NewGetNewPackagingRequestIdsQuery(token, listingPageSize)
	if err != nil {
		return nil, err
	}

	page, err := r.getNewPackagingRequestIdsHandler.Handle(p.Context, query)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(page.PackagingRequestIDs))
	for i, id := range page.PackagingRequestIDs {
		ids[i] = id.String()
	}

	return map[string]any{
		"packagingRequestIds": ids,
		"nextToken":           wireToken(page.NextToken),
	}, nil
}

func (r *Resolvers) getPackagingRequest(p graphql.ResolveParams) (any, error) {
	orderID, err := orderIDFromInput(p)
	if err != nil {
		return nil, err
	}

	query, err := queries.NewGetPackagingRequestQuery(orderID)
	if err != nil {
		return nil, err
	}

	detail, err := r.getPackagingRequestHandler.Handle(p.Context, query)
	if err != nil {
		return nil, err
	}

	products := make([]map[string]any, len(detail.Products))
	for i, product := range detail.Products {
		products[i] = map[string]any{
			"productId": product.ProductID,
			"quantity":  product.Quantity,
		}
	}

	return map[string]any{
		"orderId":  detail.OrderID.String(),
		"status":   detail.Status.String(),
		"products": products,
	}, nil
}

func (r *Resolvers) getNewDeliveries(p graphql.ResolveParams) (any, error) {
	token, err := pageTokenArg(p)
	if err != nil {
		return nil, err
	}

	query, err := queries.NewGetNewDeliveriesQuery(token, listingPageSize)
	if err != nil {
		return nil, err
	}

	page, err := r.getNewDeliveriesHandler.Handle(p.Context, query)
	if err != nil {
		return nil, err
	}

	deliveries := make([]map[string]any, len(page.Deliveries))
	for i, item := range page.Deliveries {
		deliveries[i] = map[string]any{
			"orderId": item.OrderID.String(),
			"address": map[string]any{
				"name":          item.Address.Name(),
				"streetAddress": item.Address.StreetAddress(),
				"city":          item.Address.City(),
				"country":       item.Address.Country(),
			},
		}
	}

	return map[string]any{
		"deliveries": deliveries,
		"nextToken":  wireToken(page.NextToken),
	}, nil
}

func (r *Resolvers) getDelivery(p graphql.ResolveParams) (any, error) {
	orderID, err := orderIDFromInput(p)
	if err != nil {
		return nil, err
	}

	query, err := queries.NewGetDeliveryQuery(orderID)
	if err != nil {
		return nil, err
	}

	detail, err := r.getDeliveryHandler.Handle(p.Context, query)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"orderId": detail.OrderID.String(),
		"address": map[string]any{
			"name":          detail.Address.Name(),
			"streetAddress": detail.Address.StreetAddress(),
			"city":          detail.Address.City(),
			"country":       detail.Address.Country(),
		},
	}, nil
}

func (r *Resolvers) startPackaging(p graphql.ResolveParams) (any, error) {
	orderID, err := orderIDFromInput(p)
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewStartPackagingCommand(orderID)
	if err != nil {
		return nil, err
	}

	if err = r.startPackagingHandler.Handle(p.Context, cmd); err != nil {
		return nil, err
	}

	return map[string]any{"success": true}, nil
}

func (r *Resolvers) completePackaging(p graphql.ResolveParams) (any, error) {
	orderID, err := orderIDFromInput(p)
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewCompletePackagingCommand(orderID)
	if err != nil {
		return nil, err
	}

	if err = r.completePackagingHandler.Handle(p.Context, cmd); err != nil {
		return nil, err
	}

	return map[string]any{"success": true}, nil
}

func (r *Resolvers) startDelivery(p graphql.ResolveParams) (any, error) {
	orderID, err := orderIDFromInput(p)
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewStartDeliveryCommand(orderID)
	if err != nil {
		return nil, err
	}

	if err = r.startDeliveryHandler.Handle(p.Context, cmd); err != nil {
		return nil, err
	}

	return map[string]any{"success": true}, nil
}

func (r *Resolvers) failDelivery(p graphql.ResolveParams) (any, error) {
	orderID, err := orderIDFromInput(p)
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewFailDeliveryCommand(orderID)
	if err != nil {
		return nil, err
	}

	if err = r.failDeliveryHandler.Handle(p.Context, cmd); err != nil {
		return nil, err
	}

	return map[string]any{"success": true}, nil
}

func (r *Resolvers) completeDelivery(p graphql.ResolveParams) (any, error) {
	orderID, err := orderIDFromInput(p)
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID)
	if err != nil {
		return nil, err
	}

	if err = r.completeDeliveryHandler.Handle(p.Context, cmd); err != nil {
		return nil, err
	}

	return map[string]any{"success": true}, nil
}
