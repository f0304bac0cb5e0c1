package cloud

func azureSpec() providerSpec {
	return providerSpec{
		displayName: "Microsoft Azure",
		regions: []string{
			"eastus", "westus", "westus2", "northeurope", "westeurope",
			"southeastasia", "eastasia", "japaneast", "australiaeast",
		},
		// Azure accepts abbreviated region names and canonicalizes them
		// before any validation or construction.
		regionAliases: map[string]string{
			"East":   "eastus",
			"West":   "westus",
			"West2":  "westus2",
			"North":  "northeurope",
			"Europe": "westeurope",
		},
		services: map[string]string{
			"compute":       "Virtual Machines",
			"database":      "Azure SQL Database",
			"load_balancer": "Azure Load Balancer",
			"storage":       "Blob Storage",
		},
		kinds: map[Kind]kindSpec{
			KindVM: {
				required: []string{"vm_size", "image", "resource_group", "region"},
				idFormat: "vm-%s",
				idHexLen: 8,
				typeTag:  "Microsoft.Compute/virtualMachines",
			},
			KindDatabase: {
				required: []string{"tier", "server_name", "resource_group", "region"},
				defaults: Config{"max_size_gb": 100},
				idFormat: "sqldb-%s",
				idHexLen: 8,
				typeTag:  "Microsoft.Sql/servers/databases",
			},
			KindLoadBalancer: {
				required: []string{"resource_group", "region"},
				defaults: Config{"sku": "Standard"},
				idFormat: "lb-%s",
				idHexLen: 8,
				typeTag:  "Microsoft.Network/loadBalancers",
			},
			KindStorage: {
				required: []string{"region"},
				defaults: Config{"account_type": "Standard_LRS", "access_tier": "Hot"},
				idFormat: "blob-%s",
				idHexLen: 8,
				typeTag:  "Microsoft.Storage/storageAccounts",
			},
		},
	}
}
