package cloud

func oracleSpec() providerSpec {
	return providerSpec{
		displayName: "Oracle Cloud Infrastructure",
		regions: []string{
			"us-ashburn-1", "us-phoenix-1", "us-sanjose-1",
			"ca-toronto-1", "ca-montreal-1",
			"eu-frankfurt-1", "eu-zurich-1", "eu-amsterdam-1",
			"uk-london-1", "ap-tokyo-1", "ap-osaka-1",
			"ap-sydney-1", "ap-melbourne-1", "ap-mumbai-1",
		},
		services: map[string]string{
			"compute":       "Oracle Compute",
			"database":      "Autonomous Database",
			"load_balancer": "Oracle Load Balancer",
			"storage":       "Object Storage",
		},
		kinds: map[Kind]kindSpec{
			KindVM: {
				required: []string{
					"compute_shape", "compartment_id", "availability_domain",
					"subnet_id", "image_id",
				},
				defaults: Config{
					"region": "us-ashburn-1",
				},
				enumFields: []string{"compute_shape"},
				enums: map[string][]string{
					"compute_shape": {
						"VM.Standard2.1", "VM.Standard2.2", "VM.Standard2.4", "VM.Standard2.8",
						"VM.Standard3.Flex", "VM.Optimized3.Flex",
						"BM.Standard2.52", "BM.Standard3.64",
						"VM.Standard.E3.Flex", "VM.Standard.E4.Flex",
					},
				},
				idFormat: "ocid1.instance.oc1..%s",
				idHexLen: 24,
				typeTag:  "oracle.compute.instance",
			},
			KindDatabase: {
				required: []string{"workload_type", "compartment_id"},
				defaults: Config{
					"cpu_count":  1,
					"storage_tb": 1,
					"region":     "us-ashburn-1",
				},
				enumFields: []string{"workload_type"},
				enums: map[string][]string{
					"workload_type": {"OLTP", "DW", "AJD", "APEX"},
				},
				idFormat: "ocid1.autonomousdatabase.oc1..%s",
				idHexLen: 24,
				typeTag:  "oracle.database.autonomous",
			},
			KindLoadBalancer: {
				required: []string{"compartment_id"},
				defaults: Config{
					"shape":  "100Mbps",
					"region": "us-ashburn-1",
				},
				enumFields: []string{"shape"},
				enums: map[string][]string{
					"shape": {"10Mbps", "100Mbps", "400Mbps", "8000Mbps"},
				},
				idFormat: "ocid1.loadbalancer.oc1..%s",
				idHexLen: 24,
				typeTag:  "oracle.loadbalancer",
			},
			KindStorage: {
				required: []string{"namespace", "compartment_id"},
				defaults: Config{
					"storage_tier": "Standard",
					"region":       "us-ashburn-1",
				},
				enumFields: []string{"storage_tier"},
				enums: map[string][]string{
					"storage_tier": {"Standard", "InfrequentAccess", "Archive"},
				},
				idFormat: "ocid1.bucket.oc1..%s",
				idHexLen: 24,
				typeTag:  "oracle.storage.bucket",
			},
		},
	}
}
