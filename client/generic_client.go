package client

import (
	"context"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/services/resources/mgmt/2019-05-01/resources"
	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/Azure/go-autorest/autorest/validation"
)

// GenericClient creates resources of any provider type. Unlike
// resources.Client it lets the caller choose the API version per call,
// which resource providers without a generated client require.
type GenericClient struct {
	resources.BaseClient
}

func NewGenericClient(subscriptionID string) GenericClient {
	return NewGenericClientWithBaseURI(resources.DefaultBaseURI, subscriptionID)
}

func NewGenericClientWithBaseURI(baseURI string, subscriptionID string) GenericClient {
	return GenericClient{resources.NewWithBaseURI(baseURI, subscriptionID)}
}

// CreateOrUpdate creates or updates a resource and waits until the resource
// provider reports a terminal state.
//
// parentResourcePath is empty for top level resources.
func (client GenericClient) CreateOrUpdate(ctx context.Context, resourceGroupName, resourceProviderNamespace, parentResourcePath, resourceType, resourceName, apiVersion string, parameters resources.GenericResource) (result resources.GenericResource, err error) {
	if err := validation.Validate([]validation.Validation{
		{TargetValue: resourceGroupName,
			Constraints: []validation.Constraint{{Target: "resourceGroupName", Name: validation.MaxLength, Rule: 90, Chain: nil},
				{Target: "resourceGroupName", Name: validation.MinLength, Rule: 1, Chain: nil},
				{Target: "resourceGroupName", Name: validation.Pattern, Rule: `^[-\w\._\(\)]+$`, Chain: nil}}},
		{TargetValue: apiVersion,
			Constraints: []validation.Constraint{{Target: "apiVersion", Name: validation.MinLength, Rule: 1, Chain: nil}}},
	}); err != nil {
		return result, validation.NewError("client.GenericClient", "CreateOrUpdate", err.Error())
	}

	req, err := client.CreateOrUpdatePreparer(ctx, resourceGroupName, resourceProviderNamespace, parentResourcePath, resourceType, resourceName, apiVersion, parameters)
	if err != nil {
		err = autorest.NewErrorWithError(err, "client.GenericClient", "CreateOrUpdate", nil, "Failure preparing request")
		return
	}

	future, err := client.CreateOrUpdateSender(req)
	if err != nil {
		err = autorest.NewErrorWithError(err, "client.GenericClient", "CreateOrUpdate", future.Response(), "Failure sending request")
		return
	}

	err = future.WaitForCompletionRef(ctx, client.Client)
	if err != nil {
		err = autorest.NewErrorWithError(err, "client.GenericClient", "CreateOrUpdate", future.Response(), "Failure waiting for completion")
		return
	}

	resp, err := future.GetResult(client)
	if err != nil {
		err = autorest.NewErrorWithError(err, "client.GenericClient", "CreateOrUpdate", resp, "Failure retrieving result")
		return
	}

	result, err = client.CreateOrUpdateResponder(resp)
	if err != nil {
		err = autorest.NewErrorWithError(err, "client.GenericClient", "CreateOrUpdate", resp, "Failure responding to request")
		return
	}

	return
}

// CreateOrUpdatePreparer prepares the CreateOrUpdate request.
func (client GenericClient) CreateOrUpdatePreparer(ctx context.Context, resourceGroupName, resourceProviderNamespace, parentResourcePath, resourceType, resourceName, apiVersion string, parameters resources.GenericResource) (*http.Request, error) {
	pathParameters := map[string]interface{}{
		"parentResourcePath":        parentResourcePath,
		"resourceGroupName":         autorest.Encode("path", resourceGroupName),
		"resourceName":              autorest.Encode("path", resourceName),
		"resourceProviderNamespace": autorest.Encode("path", resourceProviderNamespace),
		"resourceType":              resourceType,
		"subscriptionId":            autorest.Encode("path", client.SubscriptionID),
	}

	path := "/subscriptions/{subscriptionId}/resourcegroups/{resourceGroupName}/providers/{resourceProviderNamespace}/{parentResourcePath}/{resourceType}/{resourceName}"
	if parentResourcePath == "" {
		path = "/subscriptions/{subscriptionId}/resourcegroups/{resourceGroupName}/providers/{resourceProviderNamespace}/{resourceType}/{resourceName}"
	}

	queryParameters := map[string]interface{}{
		"api-version": apiVersion,
	}

	parameters.ID = nil
	parameters.Name = nil
	parameters.Type = nil

	preparer := autorest.CreatePreparer(
		autorest.AsContentType("application/json; charset=utf-8"),
		autorest.AsPut(),
		autorest.WithBaseURL(client.BaseURI),
		autorest.WithPathParameters(path, pathParameters),
		autorest.WithJSON(parameters),
		autorest.WithQueryParameters(queryParameters))
	return preparer.Prepare((&http.Request{}).WithContext(ctx))
}

// CreateOrUpdateSender sends the CreateOrUpdate request and starts tracking
// the long running operation.
func (client GenericClient) CreateOrUpdateSender(req *http.Request) (future azure.Future, err error) {
	var resp *http.Response
	resp, err = client.Send(req, azure.DoRetryWithRegistration(client.Client))
	if err != nil {
		return
	}

	future, err = azure.NewFutureFromResponse(resp)
	return
}

// CreateOrUpdateResponder handles the response to the CreateOrUpdate
// request.
func (client GenericClient) CreateOrUpdateResponder(resp *http.Response) (result resources.GenericResource, err error) {
	err = autorest.Respond(
		resp,
		azure.WithErrorUnlessStatusCode(http.StatusOK, http.StatusCreated, http.StatusAccepted),
		autorest.ByUnmarshallingJSON(&result),
		autorest.ByClosing())
	result.Response = autorest.Response{Response: resp}
	return
}
