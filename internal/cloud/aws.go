package cloud

func awsSpec() providerSpec {
	return providerSpec{
		displayName: "Amazon Web Services",
		regions: []string{
			"us-east-1", "us-west-1", "us-west-2", "eu-west-1",
			"eu-central-1", "ap-southeast-1", "ap-northeast-1",
		},
		services: map[string]string{
			"compute":       "EC2 Instances",
			"database":      "RDS",
			"load_balancer": "Application Load Balancer",
			"storage":       "S3",
		},
		kinds: map[Kind]kindSpec{
			KindVM: {
				required: []string{"instance_type", "ami", "vpc_id", "region"},
				idFormat: "i-%s",
				idHexLen: 8,
				typeTag:  "AWS::EC2::Instance",
			},
			KindDatabase: {
				required: []string{"engine", "instance_class", "allocated_storage", "region"},
				idFormat: "db-%s",
				idHexLen: 8,
				typeTag:  "AWS::RDS::DBInstance",
			},
			KindLoadBalancer: {
				required: []string{"vpc_id", "region"},
				defaults: Config{"scheme": "internet-facing"},
				idFormat: "alb-%s",
				idHexLen: 8,
				typeTag:  "AWS::ElasticLoadBalancingV2::LoadBalancer",
			},
			KindStorage: {
				required: []string{"region"},
				defaults: Config{"storage_class": "STANDARD"},
				idFormat: "s3-%s",
				idHexLen: 8,
				typeTag:  "AWS::S3::Bucket",
			},
		},
	}
}
