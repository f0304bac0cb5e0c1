package cloud

func gcpSpec() providerSpec {
	regions := []string{
		"us-central1", "us-east1", "us-west1", "us-west2",
		"europe-west1", "europe-west2", "asia-east1", "asia-southeast1",
	}
	// Multi-region storage locations plus every regular region.
	locations := append([]string{"US", "EU", "ASIA"}, regions...)

	return providerSpec{
		displayName: "Google Cloud Platform",
		regions:     regions,
		services: map[string]string{
			"compute":       "Compute Engine",
			"database":      "Cloud SQL",
			"load_balancer": "Cloud Load Balancing",
			"storage":       "Cloud Storage",
		},
		kinds: map[Kind]kindSpec{
			KindVM: {
				required: []string{"machine_type"},
				defaults: Config{
					"zone":           "us-central1-a",
					"boot_disk_size": 20,
					"project_id":     "my-gcp-project",
					"region":         "us-central1",
				},
				enumFields: []string{"machine_type"},
				enums: map[string][]string{
					"machine_type": {
						"e2-micro", "e2-small", "e2-medium", "e2-standard-2", "e2-standard-4",
						"n1-standard-1", "n1-standard-2", "n1-standard-4", "n1-standard-8",
						"n2-standard-2", "n2-standard-4", "n2-standard-8",
					},
				},
				idFormat: "gcp-vm-%s",
				idHexLen: 8,
				typeTag:  "gcp.compute.instance",
			},
			KindDatabase: {
				required: []string{"engine"},
				defaults: Config{
					"engine_version": "13",
					"tier":           "db-standard-1",
					"storage_size":   20,
					"region":         "us-central1",
				},
				enumFields: []string{"engine"},
				enums: map[string][]string{
					"engine": {"mysql", "postgres", "sqlserver"},
				},
				idFormat: "gcp-db-%s",
				idHexLen: 8,
				typeTag:  "gcp.cloudsql.instance",
			},
			KindLoadBalancer: {
				defaults: Config{
					"type":   "HTTP(S)",
					"region": "us-central1",
				},
				enumFields: []string{"type"},
				enums: map[string][]string{
					"type": {"HTTP(S)", "TCP", "UDP", "SSL"},
				},
				idFormat: "gcp-lb-%s",
				idHexLen: 8,
				typeTag:  "gcp.loadbalancer",
			},
			KindStorage: {
				defaults: Config{
					"location":      "US",
					"storage_class": "STANDARD",
					"region":        "us-central1",
				},
				enumFields: []string{"location", "storage_class"},
				enums: map[string][]string{
					"location":      locations,
					"storage_class": {"STANDARD", "NEARLINE", "COLDLINE", "ARCHIVE"},
				},
				idFormat: "gcp-storage-%s",
				idHexLen: 8,
				typeTag:  "gcp.storage.bucket",
			},
		},
	}
}
